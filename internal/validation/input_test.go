package validation

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"a@b.co",
		"ivan.petrov@mail.example.org",
	}
	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("email %q должен проходить: %v", email, err)
		}
	}

	invalid := []string{
		"",
		"plain",
		"no@dot",
		"two@@example.com",
		"@example.com",
		"user@.com",
		"user@example.com.",
	}
	for _, email := range invalid {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("email %q должен отклоняться", email)
		}
	}
}

func TestValidateLength(t *testing.T) {
	if err := ValidateLength("поле", "abc", 1, 5); err != nil {
		t.Fatalf("строка в пределах лимита должна проходить: %v", err)
	}
	if err := ValidateLength("поле", "", 1, 5); err == nil {
		t.Fatalf("пустая строка короче минимума должна отклоняться")
	}
	if err := ValidateLength("поле", "abcdef", 1, 5); err == nil {
		t.Fatalf("строка длиннее максимума должна отклоняться")
	}
	// Лимиты считаются в рунах, не в байтах.
	if err := ValidateLength("поле", "привет", 1, 6); err != nil {
		t.Fatalf("кириллица из 6 рун должна проходить при max=6: %v", err)
	}
}

func TestValidateQuantity(t *testing.T) {
	if err := ValidateQuantity(1); err != nil {
		t.Fatalf("количество 1 должно проходить: %v", err)
	}
	if err := ValidateQuantity(0); err == nil {
		t.Fatalf("нулевое количество должно отклоняться")
	}
	if err := ValidateQuantity(MaxQuantity + 1); err == nil {
		t.Fatalf("количество сверх лимита должно отклоняться")
	}
}

func TestValidatePrice(t *testing.T) {
	if err := ValidatePrice(0); err != nil {
		t.Fatalf("нулевая цена допустима: %v", err)
	}
	if err := ValidatePrice(-0.01); err == nil {
		t.Fatalf("отрицательная цена должна отклоняться")
	}
	if err := ValidatePrice(MaxPrice + 1); err == nil {
		t.Fatalf("цена сверх лимита должна отклоняться")
	}
}

func TestValidateCodesNeeded(t *testing.T) {
	if err := ValidateCodesNeeded(1); err != nil {
		t.Fatalf("одна единица кодов допустима: %v", err)
	}
	if err := ValidateCodesNeeded(0); err == nil {
		t.Fatalf("ноль кодов должен отклоняться")
	}
	if err := ValidateCodesNeeded(MaxCodesNeeded + 1); err == nil {
		t.Fatalf("число кодов сверх лимита должно отклоняться")
	}
}
