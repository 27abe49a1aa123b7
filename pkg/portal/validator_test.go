package portal

import "testing"

type subscribeInput struct {
	Email string `validate:"required,email"`
}

func TestValidatorPasses(t *testing.T) {
	v := GetDefaultValidator()

	ok, err := v.Passes(subscribeInput{Email: "reader@example.test"})
	if err != nil || !ok {
		t.Fatalf("expected a valid struct to pass, got ok=%v err=%v", ok, err)
	}

	if len(v.GetErrors()) != 0 {
		t.Fatalf("expected no field errors, got %v", v.GetErrors())
	}
}

func TestValidatorRejectsAndCollectsErrors(t *testing.T) {
	v := GetDefaultValidator()

	rejected, err := v.Rejects(subscribeInput{Email: "not-an-email"})
	if !rejected || err == nil {
		t.Fatalf("expected an invalid struct to be rejected, got rejected=%v err=%v", rejected, err)
	}

	if _, ok := v.GetErrors()["Email"]; !ok {
		t.Fatalf("expected a field error for Email, got %v", v.GetErrors())
	}

	if v.GetErrorsAsJson() == "" {
		t.Fatal("expected the field errors to encode as JSON")
	}
}

func TestValidatorResetsErrorsBetweenRuns(t *testing.T) {
	v := GetDefaultValidator()

	if _, err := v.Passes(subscribeInput{Email: "bad"}); err == nil {
		t.Fatal("expected the first run to fail")
	}

	if ok, err := v.Passes(subscribeInput{Email: "reader@example.test"}); !ok || err != nil {
		t.Fatalf("expected the second run to pass, got ok=%v err=%v", ok, err)
	}

	if len(v.GetErrors()) != 0 {
		t.Fatalf("expected stale errors to be cleared, got %v", v.GetErrors())
	}
}
