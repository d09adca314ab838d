package hxinject

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/pthm/hxinject/lib/props"
)

func TestSentinelErrors(t *testing.T) {
	// Verify sentinel errors are distinct
	errs := []error{
		ErrMissingProperty,
		ErrInvalidProps,
		ErrUnknownPage,
	}

	for i, err1 := range errs {
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v and %v", err1, err2)
			}
		}
	}
}

func TestMissingPropertyErrorMessage(t *testing.T) {
	err := &MissingPropertyError{Component: "page", Fields: []string{"content", "footer"}}
	want := "hxinject: page: missing required props: content, footer"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIsMissingProperty(t *testing.T) {
	mpe := &MissingPropertyError{Component: "header", Fields: []string{"welcomeMessage"}}

	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"sentinel", ErrMissingProperty, true},
		{"typed error", mpe, true},
		{"wrapped typed error", fmt.Errorf("wrapped: %w", mpe), true},
		{"other error", errors.New("other error"), false},
		{"ErrInvalidProps", ErrInvalidProps, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsMissingProperty(tt.err)
			if result != tt.expect {
				t.Errorf("IsMissingProperty(%v) = %v, want %v", tt.err, result, tt.expect)
			}
		})
	}
}

func TestMissingFields(t *testing.T) {
	mpe := &MissingPropertyError{Component: "header", Fields: []string{"welcomeMessage"}}

	tests := []struct {
		name string
		err  error
		want []string
	}{
		{"nil error", nil, nil},
		{"typed error", mpe, []string{"welcomeMessage"}},
		{"wrapped", fmt.Errorf("render: %w", mpe), []string{"welcomeMessage"}},
		{"sentinel only", ErrMissingProperty, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MissingFields(tt.err); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MissingFields(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestWrapPropsError(t *testing.T) {
	tests := []struct {
		name    string
		input   error
		invalid bool
	}{
		{"nil error", nil, false},
		{"unsupported", fmt.Errorf("%w: detail", props.ErrUnsupported), true},
		{"decode", fmt.Errorf("%w: detail", props.ErrDecode), true},
		{"other error", errors.New("other"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrapPropsError(tt.input)
			if tt.input == nil {
				if err != nil {
					t.Errorf("wrapPropsError(nil) = %v, want nil", err)
				}
				return
			}
			if IsInvalidProps(err) != tt.invalid {
				t.Errorf("IsInvalidProps(wrapPropsError(%v)) = %v, want %v", tt.input, !tt.invalid, tt.invalid)
			}
		})
	}
}
