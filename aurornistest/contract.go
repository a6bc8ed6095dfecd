// Package aurornistest provides a contract test suite for aurornis providers
// and assertion helpers for aurornis results.
package aurornistest

// AllContracts returns all test cases for the contract test suite.
func AllContracts() []TestCase {
	const initialCapacity = 40

	contracts := make([]TestCase, 0, initialCapacity)

	contracts = append(contracts, coreContracts()...)
	contracts = append(contracts, environmentContracts()...)
	contracts = append(contracts, streamContracts()...)
	contracts = append(contracts, errorContracts()...)

	return contracts
}
