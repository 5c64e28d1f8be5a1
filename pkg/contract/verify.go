package contract

import (
	"fmt"
	"sort"
	"strings"

	"github.com/phishguard/guardkit/pkg/forms"
)

// Form operations the validation engine is generated against.
const (
	OpSignup        = "signupUser"
	OpLogin         = "loginUser"
	OpUpdateProfile = "updateProfile"
)

// formExpectation pins one operation's request schema to the field keys the
// validation engine uses.
type formExpectation struct {
	operation   string
	properties  []string
	required    []string
	constraints map[string]fieldConstraint
}

// fieldConstraint pins the schema limits the engine's rules are generated
// against. Zero values mean the constraint is not checked.
type fieldConstraint struct {
	minLength int
	maxLength int
	pattern   string
	format    string
}

func nameConstraint() fieldConstraint {
	return fieldConstraint{minLength: 2, maxLength: 255, pattern: `^[a-zA-Z\s]+$`}
}

func formExpectations() []formExpectation {
	return []formExpectation{
		{
			operation: OpSignup,
			properties: []string{
				forms.FieldFullName,
				forms.FieldEmail,
				forms.FieldPassword,
				forms.FieldConfirmPassword,
				forms.FieldAgreeToTerms,
				forms.FieldAgreeToPrivacy,
				forms.FieldSubscribeNewsletter,
			},
			required: []string{
				forms.FieldFullName,
				forms.FieldEmail,
				forms.FieldPassword,
				forms.FieldConfirmPassword,
				forms.FieldAgreeToTerms,
				forms.FieldAgreeToPrivacy,
			},
			constraints: map[string]fieldConstraint{
				forms.FieldFullName: nameConstraint(),
				forms.FieldEmail:    {format: "email"},
				forms.FieldPassword: {minLength: 8},
			},
		},
		{
			operation:  OpLogin,
			properties: []string{forms.FieldEmail, forms.FieldPassword, forms.FieldRememberMe},
			required:   []string{forms.FieldEmail, forms.FieldPassword},
			constraints: map[string]fieldConstraint{
				forms.FieldEmail: {format: "email"},
			},
		},
		{
			operation:  OpUpdateProfile,
			properties: []string{forms.FieldFullName, forms.FieldSubscribeNewsletter},
			required:   nil,
			constraints: map[string]fieldConstraint{
				forms.FieldFullName: nameConstraint(),
			},
		},
	}
}

// VerifyForms checks that parsed operations still carry the fields the
// validation engine expects. It is the drift guard between this module and
// the canonical contract: a contract edit that renames, drops, or newly
// requires a form field fails here before it silently skews validation.
func VerifyForms(ops map[string]Operation) error {
	var issues []string

	for _, want := range formExpectations() {
		op, ok := ops[want.operation]
		if !ok {
			issues = append(issues, fmt.Sprintf("operation %s missing", want.operation))
			continue
		}

		schema := op.RequestBody
		for _, name := range want.properties {
			if _, ok := schema.Properties[name]; !ok {
				issues = append(issues, fmt.Sprintf("%s: property %s missing", want.operation, name))
			}
		}
		for name := range schema.Properties {
			if !contains(want.properties, name) {
				issues = append(issues, fmt.Sprintf("%s: unexpected property %s", want.operation, name))
			}
		}

		for _, name := range sortedConstraintKeys(want.constraints) {
			prop, ok := schema.Properties[name]
			if !ok {
				continue // reported above
			}
			issues = append(issues, constraintIssues(want.operation, name, want.constraints[name], prop)...)
		}

		gotRequired := append([]string(nil), schema.Required...)
		wantRequired := append([]string(nil), want.required...)
		sort.Strings(gotRequired)
		sort.Strings(wantRequired)
		if !equalStrings(gotRequired, wantRequired) {
			issues = append(issues, fmt.Sprintf(
				"%s: required fields are [%s], engine expects [%s]",
				want.operation,
				strings.Join(gotRequired, ", "),
				strings.Join(wantRequired, ", "),
			))
		}
	}

	if len(issues) > 0 {
		sort.Strings(issues)
		return fmt.Errorf("contract: form drift: %s", strings.Join(issues, "; "))
	}
	return nil
}

func constraintIssues(operation, field string, want fieldConstraint, got Schema) []string {
	var issues []string

	if want.minLength > 0 {
		if got.MinLength == nil || *got.MinLength != want.minLength {
			issues = append(issues, fmt.Sprintf(
				"%s: %s minLength is %s, engine expects %d",
				operation, field, intPtrString(got.MinLength), want.minLength))
		}
	}
	if want.maxLength > 0 {
		if got.MaxLength == nil || *got.MaxLength != want.maxLength {
			issues = append(issues, fmt.Sprintf(
				"%s: %s maxLength is %s, engine expects %d",
				operation, field, intPtrString(got.MaxLength), want.maxLength))
		}
	}
	if want.pattern != "" && got.Pattern != want.pattern {
		issues = append(issues, fmt.Sprintf(
			"%s: %s pattern is %q, engine expects %q",
			operation, field, got.Pattern, want.pattern))
	}
	if want.format != "" && got.Format != want.format {
		issues = append(issues, fmt.Sprintf(
			"%s: %s format is %q, engine expects %q",
			operation, field, got.Format, want.format))
	}

	return issues
}

func sortedConstraintKeys(m map[string]fieldConstraint) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func intPtrString(v *int) string {
	if v == nil {
		return "unset"
	}
	return fmt.Sprintf("%d", *v)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
