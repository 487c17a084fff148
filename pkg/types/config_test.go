package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	valid := DefaultConfig()

	withDatabase := valid
	withDatabase.Database = ""
	withHistory := valid
	withHistory.HistoryLength = -1
	withLevel := valid
	withLevel.LogLevel = "verbose"
	zeroHistory := valid
	zeroHistory.HistoryLength = 0
	fileDB := valid
	fileDB.Database = "/tmp/games.db"

	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{name: "defaults are valid", config: valid},
		{name: "file database is valid", config: fileDB},
		{name: "zero history length disables history", config: zeroHistory},
		{name: "empty database returns ErrDatabaseEmpty", config: withDatabase, wantErr: ErrDatabaseEmpty},
		{name: "negative history returns ErrHistoryLengthInvalid", config: withHistory, wantErr: ErrHistoryLengthInvalid},
		{name: "unknown level returns ErrLogLevelUnknown", config: withLevel, wantErr: ErrLogLevelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigInMemory(t *testing.T) {
	if !DefaultConfig().InMemory() {
		t.Fatal("default config should use the in-memory database")
	}
	if (Config{Database: "games.db"}).InMemory() {
		t.Fatal("file database reported as in-memory")
	}
}

func TestIsUserError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{ErrNotFound, true},
		{ErrDuplicate, true},
		{ErrInvalid, true},
		{errors.Join(errors.New("context"), ErrDuplicate), true},
		{errors.New("disk I/O error"), false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsUserError(tt.err); got != tt.want {
			t.Errorf("IsUserError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
