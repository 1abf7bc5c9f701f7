package utils

const (
	// Split methods
	SplitMethodEqual  = "equal"
	SplitMethodAmount = "amount"

	// Error kinds, surfaced alongside the message so callers can branch
	// without string matching.
	KindDuplicateName          = "DuplicateName"
	KindEmptyInput             = "EmptyInput"
	KindEmptyDescription       = "EmptyDescription"
	KindNonPositiveAmount      = "NonPositiveAmount"
	KindPayersAmountMismatch   = "PayersAmountMismatch"
	KindSharesAmountMismatch   = "SharesAmountMismatch"
	KindNoParticipantsSelected = "NoParticipantsSelected"
	KindNoPositiveShares       = "NoPositiveShares"
	KindUnknownMember          = "UnknownMember"
	KindNotFound               = "NotFound"
	KindInvalidRequest         = "InvalidRequest"

	// Epsilon is the tolerance below which a monetary difference is treated
	// as zero, absorbing floating-point rounding residue.
	Epsilon = 0.01

	// Precision for monetary display rounding
	MoneyPrecision = 100.0

	// Default name for persisted groups that lost theirs
	UntitledGroupName = "Untitled Group"

	// Currency symbol used in formatted summary and settlement lines
	CurrencySymbol = "₹"
)
