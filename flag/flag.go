package flag

import (
	"fmt"
	"strings"
)

// StringEnumFlag implements the flag.Value interface for flags that only
// accept a value from the given set of strings.
type StringEnumFlag struct {
	values []string
	value  string
}

func NewStringEnumFlag(values []string, defaultValue string) *StringEnumFlag {
	return &StringEnumFlag{values, defaultValue}
}

func (flag *StringEnumFlag) Value() string {
	return flag.value
}

func (flag *StringEnumFlag) String() string {
	return flag.value
}

func (flag *StringEnumFlag) Set(value string) error {
	for _, v := range flag.values {
		if v == value {
			flag.value = value
			return nil
		}
	}
	return fmt.Errorf("invalid value: %v (valid values: %v)",
		value, strings.Join(flag.values, "|"))
}
