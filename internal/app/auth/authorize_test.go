package auth

import (
	"testing"

	"github.com/okutan/lexbook/internal/app/models"
)

var (
	teacher  = Actor{ID: 1, Role: models.RoleTeacher, Authenticated: true}
	student  = Actor{ID: 2, Role: models.RoleStudent, Authenticated: true}
	stranger = Actor{}
)

func classOwnedBy(teacherID int64, studentIDs ...int64) Resource {
	return Resource{Class: &ClassSnapshot{TeacherID: teacherID, StudentIDs: studentIDs}}
}

func TestAuthorizeRules(t *testing.T) {
	tests := []struct {
		name     string
		actor    Actor
		action   Action
		resource Resource
		allowed  bool
		reason   DenyReason
	}{
		{"unauthenticated register allowed", stranger, ActionRegister, Resource{}, true, ""},
		{"unauthenticated login allowed", stranger, ActionLogin, Resource{}, true, ""},
		{"unauthenticated mutation denied", stranger, ActionWordBookCreate, Resource{}, false, ReasonUnauthenticated},
		{"unauthenticated class read denied", stranger, ActionClassRead, classOwnedBy(1), false, ReasonUnauthenticated},

		{"student cannot create word book", student, ActionWordBookCreate, Resource{}, false, ReasonInsufficientRole},
		{"student cannot crawl", student, ActionWordBookAcquire, Resource{}, false, ReasonInsufficientRole},
		{"student cannot import words", student, ActionWordImport, Resource{}, false, ReasonInsufficientRole},
		{"teacher can create word book", teacher, ActionWordBookCreate, Resource{}, true, ""},
		{"any teacher can update any word book", teacher, ActionWordBookUpdate, Resource{}, true, ""},

		{"owner can update class", teacher, ActionClassUpdate, classOwnedBy(1), true, ""},
		{"non-owner teacher cannot update class", teacher, ActionClassUpdate, classOwnedBy(99), false, ReasonNotOwner},
		{"non-owner teacher cannot delete class", teacher, ActionClassDelete, classOwnedBy(99), false, ReasonNotOwner},
		{"non-owner teacher cannot change roster", teacher, ActionRosterAddStudent, classOwnedBy(99), false, ReasonNotOwner},
		{"owner can change roster", teacher, ActionRosterAddStudent, classOwnedBy(1), true, ""},

		{"member student can read class", student, ActionClassRead, classOwnedBy(1, 2, 3), true, ""},
		{"non-member student cannot read class", student, ActionClassRead, classOwnedBy(1, 3, 4), false, ReasonNotMember},
		{"teacher can read class", teacher, ActionClassRead, classOwnedBy(99), true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Authorize(tt.actor, tt.action, tt.resource)
			if decision.Allowed != tt.allowed {
				t.Fatalf("allowed = %v, want %v", decision.Allowed, tt.allowed)
			}
			if !tt.allowed && decision.Reason != tt.reason {
				t.Fatalf("reason = %q, want %q", decision.Reason, tt.reason)
			}
		})
	}
}

func TestAuthorizeIsPure(t *testing.T) {
	resource := classOwnedBy(1, 2)
	first := Authorize(student, ActionClassRead, resource)
	for i := 0; i < 100; i++ {
		if Authorize(student, ActionClassRead, resource) != first {
			t.Fatal("identical inputs produced different decisions")
		}
	}
}

// A student never passes ownership-gated actions, whatever the resource says.
func TestStudentNeverPassesOwnershipGates(t *testing.T) {
	resources := []Resource{
		classOwnedBy(2),    // even "owning" the class
		classOwnedBy(2, 2), // and being a member of it
		classOwnedBy(99),
		{},
	}
	actions := []Action{ActionClassUpdate, ActionClassDelete, ActionRosterAddStudent, ActionRosterDropStudent}

	for _, res := range resources {
		for _, action := range actions {
			if decision := Authorize(student, action, res); decision.Allowed {
				t.Fatalf("student passed %s on %+v", action, res)
			}
		}
	}
}

func TestDenyErrorMapping(t *testing.T) {
	if err := Check(stranger, ActionClassUpdate, classOwnedBy(1)); err == nil {
		t.Fatal("expected error for unauthenticated actor")
	}
	if err := Check(teacher, ActionClassUpdate, classOwnedBy(1)); err != nil {
		t.Fatalf("unexpected error for owner: %v", err)
	}
}
