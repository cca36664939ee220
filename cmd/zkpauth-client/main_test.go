package main

import "testing"

func TestValidateServerURL(t *testing.T) {
	valid := []string{
		"http://127.0.0.1:3000",
		"https://auth.example.com",
		"http://localhost:8080/",
	}
	for _, u := range valid {
		if err := validateServerURL(u); err != nil {
			t.Errorf("validateServerURL(%q) = %v, want nil", u, err)
		}
	}

	invalid := []string{
		"",
		"not a url",
		"127.0.0.1:3000",
		"ftp:///missing-host",
		"://bad",
	}
	for _, u := range invalid {
		if err := validateServerURL(u); err == nil {
			t.Errorf("validateServerURL(%q) = nil, want error", u)
		}
	}
}
