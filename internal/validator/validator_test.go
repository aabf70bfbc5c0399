package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validShop() ShopInput {
	return ShopInput{
		Name:     "Gupta General Store",
		City:     "Delhi",
		Address:  "123, Main Bazaar, Karol Bagh",
		Phone:    "+911234567890",
		Whatsapp: "+911234567890",
		Email:    "owner@example.com",
	}
}

func TestValidateShop(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ValidateShop(validShop()))

	tests := []struct {
		name    string
		mutate  func(*ShopInput)
		wantErr string
	}{
		{"short name", func(s *ShopInput) { s.Name = "A" }, "Shop name must be at least 2 characters long"},
		{"long name", func(s *ShopInput) { s.Name = strings.Repeat("a", 101) }, "Shop name cannot exceed 100 characters"},
		{"missing city", func(s *ShopInput) { s.City = "" }, "City name is required and must be at least 2 characters"},
		{"short address", func(s *ShopInput) { s.Address = "short" }, "Address must be at least 10 characters long"},
		{"long address", func(s *ShopInput) { s.Address = strings.Repeat("a", 201) }, "Address cannot exceed 200 characters"},
		{"missing phone", func(s *ShopInput) { s.Phone = "" }, "Phone number is required"},
		{"bad phone", func(s *ShopInput) { s.Phone = "12345" }, "Please provide a valid Indian phone number"},
		{"bad whatsapp", func(s *ShopInput) { s.Whatsapp = "nope" }, "Please provide a valid WhatsApp number"},
		{"bad email", func(s *ShopInput) { s.Email = "not-an-email" }, "Please provide a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validShop()
			tt.mutate(&in)
			errs := ValidateShop(in)
			require.NotEmpty(t, errs)
			assert.Contains(t, errs, tt.wantErr)
		})
	}
}

func TestValidateShopOptionalFields(t *testing.T) {
	t.Parallel()

	in := validShop()
	in.Whatsapp = ""
	in.Email = ""
	assert.Empty(t, ValidateShop(in))
}

func validProduct() ProductInput {
	return ProductInput{
		Name:        "Tata Salt 1kg",
		Description: "Iodized salt, 1kg pack",
		Category:    "kirana",
		Price:       25,
	}
}

func TestValidateProduct(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ValidateProduct(validProduct()))

	tests := []struct {
		name    string
		mutate  func(*ProductInput)
		wantErr string
	}{
		{"short name", func(p *ProductInput) { p.Name = "X" }, "Product name must be at least 2 characters long"},
		{"long name", func(p *ProductInput) { p.Name = strings.Repeat("a", 101) }, "Product name cannot exceed 100 characters"},
		{"long description", func(p *ProductInput) { p.Description = strings.Repeat("a", 501) }, "Description cannot exceed 500 characters"},
		{"unknown category", func(p *ProductInput) { p.Category = "electronics" }, "Category must be one of: kirana, snacks, beverages, toiletries, household, dairy, general"},
		{"missing category", func(p *ProductInput) { p.Category = "" }, "Category must be one of: kirana, snacks, beverages, toiletries, household, dairy, general"},
		{"negative price", func(p *ProductInput) { p.Price = -1 }, "Price must be a valid positive number"},
		{"excessive price", func(p *ProductInput) { p.Price = 100001 }, "Price cannot exceed ₹1,00,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validProduct()
			tt.mutate(&in)
			errs := ValidateProduct(in)
			require.NotEmpty(t, errs)
			assert.Contains(t, errs, tt.wantErr)
		})
	}
}

func TestValidateProductZeroPriceAllowed(t *testing.T) {
	t.Parallel()

	in := validProduct()
	in.Price = 0
	assert.Empty(t, ValidateProduct(in))
}

func TestValidateSearch(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ValidateSearch(SearchInput{Query: "atta", City: "Delhi", Category: "kirana"}))
	assert.Empty(t, ValidateSearch(SearchInput{}))

	errs := ValidateSearch(SearchInput{Query: strings.Repeat("a", 101)})
	assert.Contains(t, errs, "Search query cannot exceed 100 characters")

	errs = ValidateSearch(SearchInput{City: strings.Repeat("a", 51)})
	assert.Contains(t, errs, "City name cannot exceed 50 characters")

	errs = ValidateSearch(SearchInput{Category: "electronics"})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Category must be one of")
}

func TestEscapeTrimsAndEscapesMarkup(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "&lt;b&gt;Name&lt;/b&gt;", Escape("  <b>Name</b>  "))
	assert.Equal(t, "plain", Escape("plain"))
	assert.Equal(t, "", Escape("   "))
}
