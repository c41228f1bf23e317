// form/form.go
package form

import (
	"context"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	console_errors "github.com/buildtrack/epc-console/errors"
	"github.com/buildtrack/epc-console/notify"
	"github.com/buildtrack/epc-console/store"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Report validation errors under the wire field name so they line up
	// with the server's field-keyed error maps.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}

// Config wires one dialog's form to its mutation, notifier and invalidation
// tags.
type Config[T any] struct {
	// Submit runs the create/update operation for the current values.
	Submit func(ctx context.Context, values T) error
	// Rules adds custom validation on top of the struct tags. Returned map
	// is field name -> message; empty means valid.
	Rules func(values T) map[string]string
	// Invalidates lists the queries the mutation invalidates on success.
	Invalidates []store.Tag

	Notifier *notify.Notifier
	Store    *store.Store

	SuccessMessage string
	// FailureMessage is the generic fallback shown when the server sends no
	// message of its own.
	FailureMessage string
}

// Form holds one dialog's local field state. Opening the form (for create or
// for a different entity) always resets that state so stale values from a
// previous edit never leak into the next submission. On a failed submission
// the form stays open with its values intact so the user can correct and
// resubmit.
type Form[T any] struct {
	cfg Config[T]

	mu          sync.Mutex
	open        bool
	editing     bool
	busy        bool
	values      T
	fieldErrors map[string]string
}

func New[T any](cfg Config[T]) *Form[T] {
	if cfg.FailureMessage == "" {
		cfg.FailureMessage = "Something went wrong. Please try again."
	}
	return &Form[T]{cfg: cfg}
}

// OpenForCreate opens the dialog with empty defaults.
func (f *Form[T]) OpenForCreate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero T
	f.values = zero
	f.fieldErrors = nil
	f.open = true
	f.editing = false
}

// OpenForEdit opens the dialog seeded with the selected entity's current
// values.
func (f *Form[T]) OpenForEdit(entity T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = entity
	f.fieldErrors = nil
	f.open = true
	f.editing = true
}

// Close dismisses the dialog and drops its state.
func (f *Form[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero T
	f.values = zero
	f.fieldErrors = nil
	f.open = false
	f.editing = false
}

func (f *Form[T]) IsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

func (f *Form[T]) IsEditing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editing
}

// IsBusy reports whether a submission is in flight; the submit control is
// disabled while it is.
func (f *Form[T]) IsBusy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

// Values returns the current field state.
func (f *Form[T]) Values() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Update mutates the field state in place, the way typing into the dialog
// does.
func (f *Form[T]) Update(fn func(values *T)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(&f.values)
}

// FieldErrors returns the current field -> message map, client-side or
// mapped back from the server.
func (f *Form[T]) FieldErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.fieldErrors))
	for k, v := range f.fieldErrors {
		out[k] = v
	}
	return out
}

// Validate runs struct-tag and custom rules over the current values and
// records any errors. It is a pure check: no network call is made.
func (f *Form[T]) Validate() bool {
	f.mu.Lock()
	values := f.values
	f.mu.Unlock()

	errs := validateValues(values, f.cfg.Rules)

	f.mu.Lock()
	f.fieldErrors = errs
	f.mu.Unlock()
	return len(errs) == 0
}

// Submit validates, runs the mutation, and applies the success/failure
// contract: success notifies, invalidates the declared queries and closes
// the dialog; failure surfaces the server's message and leaves the dialog
// open with its field state intact.
func (f *Form[T]) Submit(ctx context.Context) error {
	f.mu.Lock()
	if !f.open {
		f.mu.Unlock()
		return console_errors.ErrFormClosed
	}
	if f.busy {
		f.mu.Unlock()
		return console_errors.ErrSubmissionInFlight
	}
	values := f.values
	errs := validateValues(values, f.cfg.Rules)
	if len(errs) > 0 {
		f.fieldErrors = errs
		f.mu.Unlock()
		return console_errors.ErrFormInvalid
	}
	f.fieldErrors = nil
	f.busy = true
	f.mu.Unlock()

	err := f.cfg.Submit(ctx, values)

	f.mu.Lock()
	f.busy = false
	f.mu.Unlock()

	if err != nil {
		message := f.cfg.FailureMessage
		if apiErr, ok := console_errors.AsAPIError(err); ok {
			if apiErr.Message != "" {
				message = apiErr.Message
			}
			if len(apiErr.Fields) > 0 {
				f.mu.Lock()
				f.fieldErrors = apiErr.Fields
				f.mu.Unlock()
			}
		}
		if f.cfg.Notifier != nil {
			f.cfg.Notifier.Error(message)
		}
		return err
	}

	if f.cfg.Notifier != nil && f.cfg.SuccessMessage != "" {
		f.cfg.Notifier.Success(f.cfg.SuccessMessage)
	}
	if f.cfg.Store != nil && len(f.cfg.Invalidates) > 0 {
		f.cfg.Store.Invalidate(ctx, f.cfg.Invalidates...)
	}
	f.Close()
	return nil
}

func validateValues[T any](values T, rules func(T) map[string]string) map[string]string {
	errs := make(map[string]string)

	if err := validate.Struct(values); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, ve := range verrs {
				errs[ve.Field()] = validationMessage(ve)
			}
		}
	}
	if rules != nil {
		for field, msg := range rules(values) {
			errs[field] = msg
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validationMessage(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	default:
		return "Invalid value"
	}
}
