package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetConnectionString(t *testing.T) {
	gokeyring.MockInit()

	testConnStr := "postgres://journal@localhost:5432/wellbeing?sslmode=disable"
	if err := SetConnectionString(testConnStr); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}

	retrieved, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString() failed: %v", err)
	}
	if retrieved != testConnStr {
		t.Errorf("GetConnectionString() = %q, want %q", retrieved, testConnStr)
	}
}

func TestSetConnectionStringEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString(""); err == nil {
		t.Error("SetConnectionString(\"\") should return an error")
	}
}

func TestGetConnectionStringNotFound(t *testing.T) {
	gokeyring.MockInit()
	_ = DeleteConnectionString()

	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetConnectionString() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteConnectionString(t *testing.T) {
	gokeyring.MockInit()

	if err := SetConnectionString("postgres://journal@localhost/wellbeing"); err != nil {
		t.Fatalf("SetConnectionString() failed: %v", err)
	}
	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString() failed: %v", err)
	}
	if err := DeleteConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteConnectionString() error = %v, want %v", err, ErrNotFound)
	}
}

func TestResolve(t *testing.T) {
	gokeyring.MockInit()
	_ = DeleteConnectionString()

	t.Run("passthrough", func(t *testing.T) {
		got, err := Resolve("/tmp/wellbeing.db")
		if err != nil || got != "/tmp/wellbeing.db" {
			t.Errorf("Resolve() = %q, %v", got, err)
		}
	})

	t.Run("keyring empty", func(t *testing.T) {
		if _, err := Resolve("keyring"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Resolve() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("keyring set", func(t *testing.T) {
		const connStr = "postgres://journal@db/wellbeing"
		if err := SetConnectionString(connStr); err != nil {
			t.Fatalf("SetConnectionString() failed: %v", err)
		}
		got, err := Resolve("keyring")
		if err != nil || got != connStr {
			t.Errorf("Resolve() = %q, %v", got, err)
		}
	})
}
