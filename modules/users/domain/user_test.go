package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/BasavarajuVB/User-management-backend/modules/shared/events/contracts"
	"github.com/BasavarajuVB/User-management-backend/modules/users/domain"
)

func TestNewUser(t *testing.T) {
	user := domain.NewUser(testProfile("John", "Doe", "john@example.com", "Engineering"))

	if !user.ID().IsZero() {
		t.Error("expected a new user to have no ID")
	}
	if user.Email().String() != "john@example.com" {
		t.Errorf("expected email 'john@example.com', got '%s'", user.Email().String())
	}
	if len(user.DomainEvents()) != 0 {
		t.Errorf("expected no events before the user is stored, got %d", len(user.DomainEvents()))
	}
}

func TestUser_MarkCreated(t *testing.T) {
	user := domain.NewUser(testProfile("John", "Doe", "john@example.com", "Engineering"))

	user.MarkCreated(7)

	if user.ID() != 7 {
		t.Errorf("expected ID 7, got %d", user.ID())
	}
	evts := user.DomainEvents()
	if len(evts) != 1 {
		t.Fatalf("expected 1 event, got %d", len(evts))
	}
	created, ok := evts[0].(contracts.UserCreatedEvent)
	if !ok {
		t.Fatalf("expected UserCreatedEvent, got %T", evts[0])
	}
	if created.UserID != 7 || created.AggregateID() != "7" {
		t.Errorf("unexpected event ids: user_id=%d aggregate_id=%s", created.UserID, created.AggregateID())
	}
	if created.Department != "Engineering" {
		t.Errorf("expected department 'Engineering', got '%s'", created.Department)
	}
}

func TestUser_UpdateProfile(t *testing.T) {
	user := domain.Reconstitute(3, testProfile("John", "Doe", "john@example.com", "Engineering"))

	user.UpdateProfile(testProfile("Jane", "Smith", "jane@example.com", "Sales"))

	if user.FirstName().String() != "Jane" || user.LastName().String() != "Smith" {
		t.Errorf("expected name 'Jane Smith', got '%s %s'", user.FirstName(), user.LastName())
	}
	if user.Department().String() != "Sales" {
		t.Errorf("expected department 'Sales', got '%s'", user.Department())
	}
	evts := user.DomainEvents()
	if len(evts) != 1 || evts[0].EventType() != contracts.UserUpdatedEventType {
		t.Fatalf("expected a single UserUpdated event, got %v", evts)
	}
}

func TestUser_Delete(t *testing.T) {
	user := domain.Reconstitute(9, testProfile("John", "Doe", "john@example.com", "Engineering"))

	user.Delete()

	evts := user.DomainEvents()
	if len(evts) != 1 {
		t.Fatalf("expected 1 event, got %d", len(evts))
	}
	deleted, ok := evts[0].(contracts.UserDeletedEvent)
	if !ok {
		t.Fatalf("expected UserDeletedEvent, got %T", evts[0])
	}
	if deleted.UserID != 9 {
		t.Errorf("expected user_id 9, got %d", deleted.UserID)
	}

	user.ClearDomainEvents()
	if len(user.DomainEvents()) != 0 {
		t.Error("expected events to be cleared")
	}
}

func TestParseUserID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.UserID
		wantErr error
	}{
		{"positive", "42", 42, nil},
		{"zero", "0", 0, nil},
		{"negative", "-3", -3, nil},
		{"not a number", "abc", 0, domain.ErrInvalidUserID},
		{"empty", "", 0, domain.ErrInvalidUserID},
		{"fractional", "1.5", 0, domain.ErrInvalidUserID},
		{"integral real", "1.0", 1, nil},
		{"exponent", "2e1", 20, nil},
		{"trailing dot", "7.", 7, nil},
		{"hex float", "0x1p0", 0, domain.ErrInvalidUserID},
		{"infinity", "Inf", 0, domain.ErrInvalidUserID},
		{"nan", "NaN", 0, domain.ErrInvalidUserID},
		{"out of range", "1e19", 0, domain.ErrInvalidUserID},
		{"dot only", ".", 0, domain.ErrInvalidUserID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseUserID(tt.input)
			if err != tt.wantErr {
				t.Errorf("ParseUserID(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseUserID(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestText(t *testing.T) {
	value := "hr"
	present := domain.NewText(&value)
	missing := domain.NewText(nil)

	if v, ok := present.Value(); !ok || v != "hr" {
		t.Errorf("expected present text 'hr', got %q (valid=%v)", v, ok)
	}
	if !missing.IsNull() {
		t.Error("expected nil input to be null")
	}
	if missing.Equals(domain.NewText(nil)) {
		t.Error("null must not equal null")
	}
	if !present.Equals(domain.TextOf("hr")) {
		t.Error("expected equal texts to compare equal")
	}

	data, err := json.Marshal(struct {
		A domain.Text `json:"a"`
		B domain.Text `json:"b"`
	}{present, missing})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"a":"hr","b":null}` {
		t.Errorf("unexpected JSON %s", data)
	}
}

func testProfile(first, last, email, department string) domain.Profile {
	return domain.Profile{
		FirstName:  domain.TextOf(first),
		LastName:   domain.TextOf(last),
		Email:      domain.TextOf(email),
		Department: domain.TextOf(department),
	}
}
