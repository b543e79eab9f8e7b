package budget

import (
	"fmt"

	"github.com/SKnight-7/BudgetsApp/internal/models"
)

// defaultCategories is the built-in category set used to bootstrap a
// missing budget store. All budgeted amounts start at zero.
//
// The search order deliberately differs from the option order to prevent
// miscategorization: "animal hospital" should map to Pet Care, not Medical,
// so Pet Care is searched first. Broad matchers like Other Shopping
// ("outlet", "amazon") are searched last so that, for example, "amazon
// prime video" reaches Entertainment via "video" before Other Shopping has
// a chance to claim it.
func defaultCategories() (map[string]models.BudgetCategory, error) {
	rows := []struct {
		classification string
		name           string
		keywords       string
		option         string
		order          string
	}{
		{"Income", "Paycheck", "payroll", "1", "1"},
		{"Income", "Other Income", "cashout", "2", "2"},
		{"Monthly Household Bills", "Mortgage & Rent", "apartments|mortgage", "3", "3"},
		{"Monthly Household Bills", "Utilities", "utility|gas|electric|water|smud|pge", "4", "4"},
		{"Monthly Household Bills", "Phone", "verizon|metropcs|mobile", "5", "5"},
		{"Monthly Household Bills", "Internet, Cable, Satellite", "internet|comcast|xfinity|at&t|cable|satellite", "6", "6"},
		{"Food & Dining", "Groceries", "safeway|kroger|aldi|publix|meijer|piggly|albertson|costco|trader joe|co-op|food|market|grocery", "7", "7"},
		{"Food & Dining", "Eating Out", "mcdonald|starbuck|peets|chipotle|subway|panera|dunkin|taco|pizza|wings|burger|steak|coffee|yogurt", "8", "8"},
		{"Travel & Transport", "Car (Payment, Gas, Repair, Ride Share, Tolls, Parking)", "dealership|auto|uber|lyft|toll|parking|shell|chevron|exxonmobil|bp|gas", "9", "9"},
		{"Travel & Transport", "Public Transit", "transit| rt ", "10", "10"},
		{"Travel & Transport", "Trips & Travel", "hotel|motel|airline", "11", "14"},
		{"Health & Fitness", "Medical", "hospital|doctor|kaiser|medical|insurance|wellness|pharm|rx", "12", "17"},
		{"Health & Fitness", "Gym & Other Fitness", "fitness|gym|pilates|dance|running", "13", "13"},
		{"Financial", "Pay Loans & Credit Cards", "bank|loan|capital one|merrick|hsbc|american express|visa|mastercard|student ln|synchrony| cc ", "14", "11"},
		{"Shopping", "Home Improvement", "lowe|home|hardware", "15", "15"},
		{"Shopping", "Other Shopping", "amazon|amzn|ebay|macy|nordstrom|target|walmart|outlet|google", "16", "999"},
		{"Other", "Self Care", "spa | hair|nail|salon|barber|massage|beauty", "17", "17"},
		{"Other", "Pet Care", "chewy|animal|vet|kitty|cat |dog|hound|pup", "18", "12"},
		{"Other", "Laundry", "csc", "19", "19"},
		{"Other", "Entertainment", "netflix|hulu|disney|video|spotify|audible|cinemark|amc|theater|theatre|playstation|nintendo|xbox|steam|nexus mods|game|subscription|youtube|channel|television|tv", "20", "20"},
	}

	categories := make(map[string]models.BudgetCategory, len(rows))
	for _, row := range rows {
		category, err := models.NewBudgetCategory(row.classification, row.name, row.keywords, row.option, "0", row.order)
		if err != nil {
			return nil, fmt.Errorf("default category %q: %w", row.name, err)
		}
		categories[category.Name] = category
	}

	return categories, nil
}
