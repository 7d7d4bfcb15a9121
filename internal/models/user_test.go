package models

import "testing"

func TestNotificationPermissionValid(t *testing.T) {
	for _, p := range []NotificationPermission{NotificationDefault, NotificationGranted, NotificationDenied} {
		if !p.Valid() {
			t.Errorf("%q should be valid", p)
		}
	}
	for _, p := range []NotificationPermission{"", "always", "GRANTED"} {
		if p.Valid() {
			t.Errorf("%q should not be valid", p)
		}
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	u := User{}
	if err := u.SetPassword("s3cret-pass"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if u.Password == "s3cret-pass" {
		t.Fatal("password stored in plain text")
	}
	if !u.CheckPassword("s3cret-pass") {
		t.Error("correct password rejected")
	}
	if u.CheckPassword("wrong") {
		t.Error("wrong password accepted")
	}
}
