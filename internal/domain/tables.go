package domain

// TableMetadata describes where a set of tables came from
type TableMetadata struct {
	Bank        string `yaml:"bank" json:"bank"`
	EffectiveOn string `yaml:"effective_on" json:"effective_on"`
	Description string `yaml:"description" json:"description"`
}

// Tables holds every static lookup table the calculators read. It is built
// once at start-up and handed to the engine; nothing mutates it afterwards.
type Tables struct {
	Metadata      TableMetadata               `yaml:"metadata" json:"metadata"`
	InterestRates RateTable                   `yaml:"interest_rates" json:"interest_rates"`
	MonthlyIncome RateTable                   `yaml:"monthly_income_rates" json:"monthly_income_rates"`
	Charges       map[ProductType]ChargeTable `yaml:"charges" json:"charges"`
	Schemes       SchemeRules                 `yaml:"schemes" json:"schemes"`
	APY           APYContributionMatrix       `yaml:"apy_contributions" json:"apy_contributions"`
}
