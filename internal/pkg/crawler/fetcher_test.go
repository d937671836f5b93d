package crawler

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/chromedp/cdproto/page"
	"github.com/okutan/lexbook/internal/pkg/apperrors"
)

func TestClassifyNavigationError(t *testing.T) {
	err := classifyNavigationError(context.DeadlineExceeded)
	if !errors.Is(err, apperrors.ErrNavigationTimeout) {
		t.Fatalf("expected ErrNavigationTimeout, got %v", err)
	}

	err = classifyNavigationError(fmt.Errorf("page load error net::ERR_NAME_NOT_RESOLVED"))
	if !errors.Is(err, apperrors.ErrNavigationFailed) {
		t.Fatalf("expected ErrNavigationFailed, got %v", err)
	}

	wrapped := fmt.Errorf("run: %w", context.DeadlineExceeded)
	if err := classifyNavigationError(wrapped); !errors.Is(err, apperrors.ErrNavigationTimeout) {
		t.Fatalf("expected wrapped deadline to classify as timeout, got %v", err)
	}
}

// The capture must wait for network idle, not DOM readiness: a page that
// appends its entries from a fetch callback only has them once the network
// goes quiet. This pins which lifecycle event releases the wait.
func TestIsNetworkIdleEvent(t *testing.T) {
	cases := []struct {
		name string
		ev   interface{}
		want bool
	}{
		{"networkIdle releases the wait", &page.EventLifecycleEvent{Name: "networkIdle"}, true},
		{"load does not", &page.EventLifecycleEvent{Name: "load"}, false},
		{"DOMContentLoaded does not", &page.EventLifecycleEvent{Name: "DOMContentLoaded"}, false},
		{"firstPaint does not", &page.EventLifecycleEvent{Name: "firstPaint"}, false},
		{"unrelated event does not", &page.EventFrameNavigated{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isNetworkIdleEvent(tc.ev); got != tc.want {
				t.Fatalf("isNetworkIdleEvent = %v, want %v", got, tc.want)
			}
		})
	}
}
