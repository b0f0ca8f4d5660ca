// Package power defines the power card record read from YAML source files.
package power

// Power is the parsed form of one abilities/<name>.yml file.
// Type and Action are kept as raw strings; use ParseType and ParseAction to
// resolve them. Keys not listed here are silently ignored.
type Power struct {
	Template string   `yaml:"template"`
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type"`
	Level    string   `yaml:"level"`
	Keywords []string `yaml:"keywords"`
	Action   string   `yaml:"action"`
	Range    string   `yaml:"range"`
	Target   string   `yaml:"target"`
	Special  string   `yaml:"special"`
	Trigger  string   `yaml:"trigger"`
	Effect   string   `yaml:"effect"`
	Attacks  []Attack `yaml:"attacks"`
}

// Attack is one entry in Power.Attacks. Every field is optional.
type Attack struct {
	Attack   string `yaml:"attack"`
	Vs       string `yaml:"vs"`
	Damage   string `yaml:"damage"`
	Critical string `yaml:"critical"`
}
