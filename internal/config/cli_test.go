package config

import "testing"

func TestParseWordStatsArgs_Defaults(t *testing.T) {
	cli, err := ParseWordStatsArgs([]string{"input.txt"})
	if err != nil {
		t.Fatal(err)
	}
	if cli.Workers < 1 {
		t.Fatalf("Workers = %d, want >= 1", cli.Workers)
	}
	if cli.ChunkSize != 16*1024 {
		t.Fatalf("ChunkSize = %d, want %d", cli.ChunkSize, 16*1024)
	}
	if len(cli.Files) != 1 || cli.Files[0] != "input.txt" {
		t.Fatalf("Files = %v", cli.Files)
	}
}

func TestParseWordStatsArgs_MissingFile(t *testing.T) {
	if _, err := ParseWordStatsArgs([]string{"-workers=4"}); err == nil {
		t.Fatal("expected an error when no file is given")
	}
}

func TestParseWordStatsArgs_RejectsZeroWorkers(t *testing.T) {
	if _, err := ParseWordStatsArgs([]string{"-workers=0", "input.txt"}); err == nil {
		t.Fatal("expected an error for -workers=0")
	}
}

func TestParseCCCArgs_CompareFlag(t *testing.T) {
	cli, err := ParseCCCArgs([]string{"-c", "signal.bin"})
	if err != nil {
		t.Fatal(err)
	}
	if !cli.Compare {
		t.Fatal("expected Compare=true")
	}
	if len(cli.Files) != 1 || cli.Files[0] != "signal.bin" {
		t.Fatalf("Files = %v", cli.Files)
	}
}

func TestParseCCCArgs_DefaultAppendMode(t *testing.T) {
	cli, err := ParseCCCArgs([]string{"signal.bin"})
	if err != nil {
		t.Fatal(err)
	}
	if cli.Compare {
		t.Fatal("expected Compare=false by default")
	}
}
