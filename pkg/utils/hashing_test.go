package utils

import "testing"

func TestHashAndComparePasswords(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatal(err)
	}
	if hash == "hunter22" {
		t.Fatal("password stored in plain text")
	}
	if err := ComparePasswords(hash, "hunter22"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := ComparePasswords(hash, "hunter23"); err == nil {
		t.Error("wrong password accepted")
	}
}
