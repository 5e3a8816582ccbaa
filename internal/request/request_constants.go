package request

// Kind discriminators. Stored on the wide request row; never changed
// after creation.
const (
	KindExpenses  = "ExpensesRequest"
	KindHoliday   = "HolidayRequest"
	KindOvertime  = "OvertimeRequest"
	KindFinancial = "FinancialRequest"
	KindSignOff   = "SignOffRequest"
)

// Supported currencies. CHF is the default when a payload omits one.
const (
	CurrencyCHF = "CHF"
	CurrencyGBP = "GBP"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyAED = "AED"
)

// Expense types.
const (
	ExpenseTypeOffice        = "Office"
	ExpenseTypeTravel        = "Travel"
	ExpenseTypeFoodAndDrink  = "Food & Drink"
	ExpenseTypeAccommodation = "Accommodation"
	ExpenseTypeITAndComms    = "IT & Comms"
	ExpenseTypeOther         = "Other"
)

// Financial transfer types.
const (
	TransferTypeInternal   = "Internal"
	TransferTypeBudget     = "Budget"
	TransferTypePayment    = "Payment"
	TransferTypeInvestment = "Investment"
	TransferTypeDocument   = "Document"
	TransferTypeOther      = "Other"
)

// Recurrence types.
const (
	RecurrenceOneOff    = "One-off"
	RecurrenceWeekly    = "Weekly"
	RecurrenceMonthly   = "Monthly"
	RecurrenceQuarterly = "Quarterly"
	RecurrenceAnnually  = "Annually"
)

// CounterTypeReference scopes the shared counter rows that feed
// REQ-<n> reference numbers.
const CounterTypeReference = "request_reference"

// Overtime length bounds, in days.
const (
	MinOvertimeDays = 1
	MaxOvertimeDays = 7
)
