// form/form_test.go
package form_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	console_errors "github.com/buildtrack/epc-console/errors"
	"github.com/buildtrack/epc-console/form"
	logger "github.com/buildtrack/epc-console/logging"
	"github.com/buildtrack/epc-console/notify"
	"github.com/buildtrack/epc-console/store"
)

func TestMain(m *testing.M) {
	logger.InitLogger("")
	m.Run()
}

type userFields struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

func TestForm_ValidationBlocksSubmission(t *testing.T) {
	calls := 0
	f := form.New(form.Config[userFields]{
		Submit: func(ctx context.Context, values userFields) error {
			calls++
			return nil
		},
	})

	f.OpenForCreate()
	err := f.Submit(context.Background())
	assert.ErrorIs(t, err, console_errors.ErrFormInvalid)
	assert.Equal(t, 0, calls, "no network call happens while the form is invalid")
	assert.Contains(t, f.FieldErrors(), "full_name")
	assert.Contains(t, f.FieldErrors(), "email")

	f.Update(func(v *userFields) {
		v.FullName = "Asha Perera"
		v.Email = "not-an-email"
	})
	err = f.Submit(context.Background())
	assert.ErrorIs(t, err, console_errors.ErrFormInvalid)
	assert.Equal(t, "Enter a valid email address", f.FieldErrors()["email"])
	assert.Equal(t, 0, calls)
}

func TestForm_SuccessNotifiesInvalidatesAndCloses(t *testing.T) {
	st := store.New()
	refetches := 0
	st.Register(func(ctx context.Context) error {
		refetches++
		return nil
	}, store.TagUsers)

	notifier := notify.NewNotifier()
	var notifications []notify.Notification
	notifier.Subscribe(func(n notify.Notification) {
		notifications = append(notifications, n)
	})

	f := form.New(form.Config[userFields]{
		Submit: func(ctx context.Context, values userFields) error {
			return nil
		},
		Notifier:       notifier,
		Store:          st,
		Invalidates:    []store.Tag{store.TagUsers},
		SuccessMessage: "User created",
	})

	f.OpenForCreate()
	f.Update(func(v *userFields) {
		v.FullName = "Asha Perera"
		v.Email = "asha@example.com"
	})
	require.NoError(t, f.Submit(context.Background()))

	assert.False(t, f.IsOpen(), "dialog closes on success")
	assert.Equal(t, 1, refetches, "owning list refetches on success")
	require.Len(t, notifications, 1)
	assert.Equal(t, notify.LevelSuccess, notifications[0].Level)
	assert.Equal(t, "User created", notifications[0].Message)
}

func TestForm_FailureKeepsStateAndSurfacesMessage(t *testing.T) {
	notifier := notify.NewNotifier()
	var notifications []notify.Notification
	notifier.Subscribe(func(n notify.Notification) {
		notifications = append(notifications, n)
	})

	f := form.New(form.Config[userFields]{
		Submit: func(ctx context.Context, values userFields) error {
			return &console_errors.APIError{
				StatusCode: 200,
				Message:    "Email already exists",
				Fields:     map[string]string{"email": "Email already exists"},
			}
		},
		Notifier: notifier,
	})

	f.OpenForCreate()
	f.Update(func(v *userFields) {
		v.FullName = "Asha Perera"
		v.Email = "asha@example.com"
	})
	err := f.Submit(context.Background())
	require.Error(t, err)

	// The dialog stays open with the typed values intact so the user can
	// correct and resubmit.
	assert.True(t, f.IsOpen())
	assert.Equal(t, "asha@example.com", f.Values().Email)
	assert.Equal(t, "Email already exists", f.FieldErrors()["email"])
	require.Len(t, notifications, 1)
	assert.Equal(t, notify.LevelError, notifications[0].Level)
	assert.Contains(t, notifications[0].Message, "Email already exists")
	assert.False(t, f.IsBusy())
}

func TestForm_GenericFailureMessageWhenServerSilent(t *testing.T) {
	notifier := notify.NewNotifier()
	var got string
	notifier.Subscribe(func(n notify.Notification) { got = n.Message })

	f := form.New(form.Config[userFields]{
		Submit: func(ctx context.Context, values userFields) error {
			return &console_errors.APIError{StatusCode: 500}
		},
		Notifier: notifier,
	})

	f.OpenForCreate()
	f.Update(func(v *userFields) {
		v.FullName = "Asha Perera"
		v.Email = "asha@example.com"
	})
	require.Error(t, f.Submit(context.Background()))
	assert.Equal(t, "Something went wrong. Please try again.", got)
}

func TestForm_OpenResetsStaleState(t *testing.T) {
	f := form.New(form.Config[userFields]{
		Submit: func(ctx context.Context, values userFields) error { return nil },
	})

	f.OpenForEdit(userFields{FullName: "Old Entity", Email: "old@example.com"})
	assert.True(t, f.IsEditing())

	// Switching to create mode must not leak the previous edit's values.
	f.OpenForCreate()
	assert.False(t, f.IsEditing())
	assert.Equal(t, userFields{}, f.Values())

	f.OpenForEdit(userFields{FullName: "Next Entity", Email: "next@example.com"})
	assert.Equal(t, "Next Entity", f.Values().FullName)

	f.Close()
	assert.False(t, f.IsOpen())
	assert.Equal(t, userFields{}, f.Values())
}

func TestForm_SubmitRequiresOpenDialog(t *testing.T) {
	f := form.New(form.Config[userFields]{
		Submit: func(ctx context.Context, values userFields) error { return nil },
	})
	assert.ErrorIs(t, f.Submit(context.Background()), console_errors.ErrFormClosed)
}
