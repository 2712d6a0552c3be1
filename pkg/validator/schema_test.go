package validator_test

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/agencysite/pkg/validator"
)

func newSignupSchema() *validator.Schema {
	return validator.NewSchema("signup",
		validator.Field("username",
			validator.Required("Username is required"),
			validator.MinLen(3, "Username is too short"),
			validator.MaxLen(12, "Username is too long"),
			validator.Matches(regexp.MustCompile(`^[a-z]+$`), "Username must be lower case letters"),
		).Trim(),
		validator.Field("email",
			validator.Required("Email is required"),
			validator.Email("Email is invalid"),
		).Trim(),
		validator.Field("nickname",
			validator.MaxLen(5, "Nickname is too long"),
		).Trim(),
	)
}

func TestSchema_Metadata(t *testing.T) {
	s := newSignupSchema()

	assert.Equal(t, "signup", s.Name())
	assert.Equal(t, []string{"username", "email", "nickname"}, s.Fields())
	assert.True(t, s.Has("email"))
	assert.False(t, s.Has("password"))

	f, err := s.Lookup("username")
	require.NoError(t, err)
	assert.Equal(t, "username", f.Name())
	assert.True(t, f.IsRequired())

	_, err = s.Lookup("password")
	assert.True(t, errors.Is(err, validator.ErrUnknownField))
}

func TestValidateField(t *testing.T) {
	t.Parallel()
	s := newSignupSchema()

	tests := []struct {
		name  string
		field string
		value string
		want  string
	}{
		{"required wins on empty", "username", "", "Username is required"},
		{"required wins on whitespace", "username", "   ", "Username is required"},
		{"min before pattern", "username", "A", "Username is too short"},
		{"max before pattern", "username", "ABCDEFGHIJKLMN", "Username is too long"},
		{"pattern last", "username", "Abc", "Username must be lower case letters"},
		{"passes", "username", "alice", ""},
		{"normalizes before checks", "username", "  alice  ", ""},
		{"optional empty passes", "nickname", "", ""},
		{"optional present is checked", "nickname", "toolong", "Nickname is too long"},
		{"unknown field has no rules", "password", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.ValidateField(s, tt.field, tt.value))
		})
	}
}

func TestValidateForm(t *testing.T) {
	t.Parallel()
	s := newSignupSchema()

	t.Run("accepts valid record with normalized values", func(t *testing.T) {
		res := validator.ValidateForm(s, validator.Record{
			"username": " alice ",
			"email":    "alice@example.com",
		})

		require.True(t, res.Valid())
		assert.NoError(t, res.Err())
		assert.Empty(t, res.Errors())
		assert.Equal(t, validator.Record{
			"username": "alice",
			"email":    "alice@example.com",
			"nickname": "",
		}, res.Values())
	})

	t.Run("rejects with one message per field in declaration order", func(t *testing.T) {
		res := validator.ValidateForm(s, validator.Record{
			"nickname": "far too long",
			"username": "",
			"email":    "nope",
		})

		require.False(t, res.Valid())
		assert.Nil(t, res.Values())
		assert.Equal(t, validator.ValidationErrors{
			{Field: "username", Message: "Username is required"},
			{Field: "email", Message: "Email is invalid"},
			{Field: "nickname", Message: "Nickname is too long"},
		}, res.Errors())
		assert.Equal(t, "Email is invalid", res.Message("email"))

		err := res.Err()
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("missing values are empty strings", func(t *testing.T) {
		res := validator.ValidateForm(s, nil)

		require.False(t, res.Valid())
		assert.Equal(t, []string{"username", "email"}, res.Errors().Fields())
	})

	t.Run("ignores undeclared record fields", func(t *testing.T) {
		res := validator.ValidateForm(s, validator.Record{
			"username": "alice",
			"email":    "alice@example.com",
			"extra":    strings.Repeat("x", 5000),
		})

		require.True(t, res.Valid())
		_, ok := res.Values()["extra"]
		assert.False(t, ok)
	})

	t.Run("is idempotent", func(t *testing.T) {
		rec := validator.Record{"username": "A", "email": "x"}
		assert.Equal(t, validator.ValidateForm(s, rec), validator.ValidateForm(s, rec))
	})

	t.Run("agrees with ValidateField", func(t *testing.T) {
		valid := validator.Record{"username": "alice", "email": "alice@example.com", "nickname": "al"}
		candidates := map[string][]string{
			"username": {"", "A", "Abc", "ABCDEFGHIJKLMN", "bob"},
			"email":    {"", "bad", "a@b.co"},
			"nickname": {"", "abcdef", "abc"},
		}

		for field, values := range candidates {
			for _, value := range values {
				rec := validator.Record{}
				for k, v := range valid {
					rec[k] = v
				}
				rec[field] = value

				fieldMsg := validator.ValidateField(s, field, value)
				formMsg := validator.ValidateForm(s, rec).Message(field)
				assert.Equal(t, fieldMsg, formMsg, "field %s value %q", field, value)
			}
		}
	})
}

func TestSchema_Pick(t *testing.T) {
	s := newSignupSchema()

	t.Run("derives sub-schema in requested order", func(t *testing.T) {
		picked := s.Pick("email-only", "email")
		assert.Equal(t, "email-only", picked.Name())
		assert.Equal(t, []string{"email"}, picked.Fields())

		res := validator.ValidateForm(picked, validator.Record{"email": "bad"})
		assert.Equal(t, "Email is invalid", res.Message("email"))
	})

	t.Run("panics on unknown field", func(t *testing.T) {
		assert.Panics(t, func() {
			s.Pick("broken", "password")
		})
	})
}

func TestNewSchema_FieldRulesAreCopied(t *testing.T) {
	t.Parallel()

	name := validator.Field("name", validator.Required("Name is required")).Trim()
	full := validator.NewSchema("contact", name)
	compact := full.Pick("compact", "name")

	t.Run("later builder calls do not leak into schemas", func(t *testing.T) {
		name.Normalize(func(string) string { return "" }, nil)

		for _, s := range []*validator.Schema{full, compact} {
			assert.Empty(t, validator.ValidateField(s, "name", " Jane "), s.Name())
			assert.Equal(t, "Jane", validator.ValidateForm(s, validator.Record{"name": " Jane "}).Values().Get("name"), s.Name())
		}
	})

	t.Run("looked up rules are detached", func(t *testing.T) {
		f, err := compact.Lookup("name")
		require.NoError(t, err)
		f.Normalize(strings.ToUpper)

		assert.Equal(t, "JANE", f.Normalized("jane"))
		assert.Equal(t, "jane", validator.ValidateForm(compact, validator.Record{"name": "jane"}).Values().Get("name"))
		assert.Equal(t, "jane", validator.ValidateForm(full, validator.Record{"name": "jane"}).Values().Get("name"))
	})
}

func TestNewSchema_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		fields []*validator.FieldRule
	}{
		{
			name:   "nil field",
			fields: []*validator.FieldRule{nil},
		},
		{
			name:   "empty field name",
			fields: []*validator.FieldRule{validator.Field("")},
		},
		{
			name: "duplicate field",
			fields: []*validator.FieldRule{
				validator.Field("email"),
				validator.Field("email"),
			},
		},
		{
			name: "min declared after max",
			fields: []*validator.FieldRule{
				validator.Field("name", validator.MaxLen(10, ""), validator.MinLen(2, "")),
			},
		},
		{
			name: "required declared after pattern",
			fields: []*validator.FieldRule{
				validator.Field("name", validator.Email(""), validator.Required("")),
			},
		},
		{
			name: "min exceeds max",
			fields: []*validator.FieldRule{
				validator.Field("name", validator.MinLen(10, ""), validator.MaxLen(2, "")),
			},
		},
		{
			name: "rule without check",
			fields: []*validator.FieldRule{
				validator.Field("name", validator.Rule{Kind: validator.KindPattern, Message: "x"}),
			},
		},
		{
			name: "unknown rule kind",
			fields: []*validator.FieldRule{
				validator.Field("name", validator.Rule{Kind: validator.Kind(9), Check: func(string) bool { return true }}),
			},
		},
		{
			name: "nil normalizer",
			fields: []*validator.FieldRule{
				validator.Field("name").Normalize(nil),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r, "expected panic")
				err, ok := r.(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, validator.ErrMalformedSchema))
			}()
			validator.NewSchema("broken", tt.fields...)
		})
	}
}

func TestNewSchema_MultiplePatternRules(t *testing.T) {
	s := validator.NewSchema("codes",
		validator.Field("code",
			validator.Required(""),
			validator.Matches(regexp.MustCompile(`^[A-Z]`), "must start upper case"),
			validator.Matches(regexp.MustCompile(`\d$`), "must end with digit"),
		),
	)

	assert.Equal(t, "must start upper case", validator.ValidateField(s, "code", "abc"))
	assert.Equal(t, "must end with digit", validator.ValidateField(s, "code", "Abc"))
	assert.Empty(t, validator.ValidateField(s, "code", "Abc1"))
}
