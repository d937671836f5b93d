package auth

import (
	"github.com/okutan/lexbook/internal/app/models"
)

// Action identifies an operation subject to authorization.
type Action string

// Actions recognized by the guard
const (
	ActionRegister Action = "auth.register"
	ActionLogin    Action = "auth.login"

	ActionWordBookCreate  Action = "wordbook.create"
	ActionWordBookUpdate  Action = "wordbook.update"
	ActionWordBookDelete  Action = "wordbook.delete"
	ActionWordBookAcquire Action = "wordbook.acquire"

	ActionWordCreate Action = "word.create"
	ActionWordUpdate Action = "word.update"
	ActionWordDelete Action = "word.delete"
	ActionWordImport Action = "word.import"

	ActionClassCreate       Action = "class.create"
	ActionClassRead         Action = "class.read"
	ActionClassUpdate       Action = "class.update"
	ActionClassDelete       Action = "class.delete"
	ActionRosterAddStudent  Action = "class.roster.add"
	ActionRosterDropStudent Action = "class.roster.remove"
)

// DenyReason explains why the guard rejected an action.
type DenyReason string

const (
	ReasonUnauthenticated  DenyReason = "Unauthenticated"
	ReasonInsufficientRole DenyReason = "InsufficientRole"
	ReasonNotOwner         DenyReason = "NotOwner"
	ReasonNotMember        DenyReason = "NotMember"
)

// Actor is the identity attempting an action. A zero Actor is unauthenticated.
type Actor struct {
	ID            int64
	Role          models.RoleType
	Authenticated bool
}

// ClassSnapshot is the resource state the guard decides against. It carries no
// behavior so decisions stay reproducible from pure data.
type ClassSnapshot struct {
	TeacherID  int64
	StudentIDs []int64
}

// Resource bundles the state of the target resource. Nil fields mean the
// action does not target that resource kind.
type Resource struct {
	Class *ClassSnapshot
}

// Decision is the guard's verdict.
type Decision struct {
	Allowed bool
	Reason  DenyReason
}

// Allow is the positive decision.
var Allow = Decision{Allowed: true}

// Deny builds a negative decision with a reason.
func Deny(reason DenyReason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// publicActions need no authentication at all.
var publicActions = map[Action]bool{
	ActionRegister: true,
	ActionLogin:    true,
}

// teacherActions require the teacher role.
var teacherActions = map[Action]bool{
	ActionWordBookCreate:  true,
	ActionWordBookUpdate:  true,
	ActionWordBookDelete:  true,
	ActionWordBookAcquire: true,
	ActionWordCreate:      true,
	ActionWordUpdate:      true,
	ActionWordDelete:      true,
	ActionWordImport:      true,
	ActionClassCreate:     true,
	ActionClassUpdate:     true,
	ActionClassDelete:     true,
	ActionRosterAddStudent:  true,
	ActionRosterDropStudent: true,
}

// classMutations additionally require ownership of the target class.
var classMutations = map[Action]bool{
	ActionClassUpdate:       true,
	ActionClassDelete:       true,
	ActionRosterAddStudent:  true,
	ActionRosterDropStudent: true,
}

// Authorize decides whether an actor may perform an action on a resource.
// It is a pure function: no I/O, no clock, identical inputs always yield
// identical decisions. Rules are evaluated in order, first match wins.
func Authorize(actor Actor, action Action, resource Resource) Decision {
	// Rule 1: everything except registration and login needs an identity.
	if !actor.Authenticated {
		if publicActions[action] {
			return Allow
		}
		return Deny(ReasonUnauthenticated)
	}

	// Rule 2: role gate.
	if teacherActions[action] && actor.Role != models.RoleTeacher {
		return Deny(ReasonInsufficientRole)
	}

	// Rule 3: class mutations are owner-only.
	if classMutations[action] {
		if resource.Class == nil || actor.ID != resource.Class.TeacherID {
			return Deny(ReasonNotOwner)
		}
	}

	// Rule 4: students may only read classes they belong to.
	if action == ActionClassRead && actor.Role == models.RoleStudent {
		if resource.Class == nil || !containsID(resource.Class.StudentIDs, actor.ID) {
			return Deny(ReasonNotMember)
		}
	}

	return Allow
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
