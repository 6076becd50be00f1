package align

// Test bridge: expose unexported kernels to package align_test for
// white-box verification without widening the production API.

var (
	LastRowForTest     = lastRow
	SplitColumnForTest = splitColumn
)
