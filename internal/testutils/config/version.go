package config

const testVersion = "/v1"

type TestEngineConfigurator struct{}

func (c TestEngineConfigurator) GetVersion() (string, error) {
	return testVersion, nil
}

func NewTestVersionConfigurator() TestEngineConfigurator {
	return TestEngineConfigurator{}
}
