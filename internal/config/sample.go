// SPDX-License-Identifier: MIT

package config

import (
	"encoding/json"
	"errors"
	"os"
)

// CreateSample writes Default as indented JSON to path.
func CreateSample(path string) error {
	raw, err := json.MarshalIndent(Default(), "", "    ")
	if err != nil {
		return errors.Join(errors.New("could not marshal sample config"), err)
	}
	err = os.WriteFile(path, raw, 0600)
	if err != nil {
		return errors.Join(errors.New("could not write sample config file"), err)
	}
	return nil
}
