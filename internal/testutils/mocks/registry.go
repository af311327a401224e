package mocks

// MockedRegistry aggregates the per-controller registry mocks so it can be
// wired anywhere the full registry interface is expected.
type MockedRegistry struct {
	*MockEmailRegistry
	*MockApplicantRegistry
}

func NewMockedRegistry(
	emails *MockEmailRegistry,
	applicants *MockApplicantRegistry) *MockedRegistry {

	return &MockedRegistry{
		MockEmailRegistry:     emails,
		MockApplicantRegistry: applicants,
	}
}
