package domain

import "testing"

func TestUserAuthenticate(t *testing.T) {
	u := User{Email: "ivan@example.com", Role: RoleManager}
	u.SetPassword("test")

	if !u.Authenticate("test") {
		t.Fatal("expected correct password to authenticate")
	}
	if u.Authenticate("wrong") {
		t.Fatal("expected wrong password to fail")
	}
	if u.Authenticate("") {
		t.Fatal("expected empty password to fail")
	}
}

func TestUserWithoutCredentialNeverAuthenticates(t *testing.T) {
	u := User{Email: "vasya@example.com", Role: RoleCustomer}

	for _, password := range []string{"", "anything", "vasya@example.com"} {
		if u.Authenticate(password) {
			t.Fatalf("expected credentialless user to reject %q", password)
		}
	}
}

func TestSetPasswordSaltsPerCall(t *testing.T) {
	a := User{Email: "a@example.com", Role: RoleAdmin}
	b := User{Email: "b@example.com", Role: RoleAdmin}
	a.SetPassword("god")
	b.SetPassword("god")

	if a.Hash == b.Hash {
		t.Fatal("expected distinct salts to yield distinct hashes")
	}
}

func TestRoleOrdering(t *testing.T) {
	if !RoleAdmin.AtLeast(RoleManager) || !RoleManager.AtLeast(RoleCustomer) {
		t.Fatal("expected admin >= manager >= customer")
	}
	if RoleCustomer.AtLeast(RoleManager) || RoleManager.AtLeast(RoleAdmin) {
		t.Fatal("expected lower roles not to satisfy higher ones")
	}
}
