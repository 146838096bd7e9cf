// motion-estimator - block-based motion estimation between video frames
//  Copyright (C) 2024, The Videofield Project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"io/ioutil"
	"os"

	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	BusyPin     string
	Workers     int
	LegacyStats bool
	Verbose     bool
}

func (conf *Config) Validate() error {
	if conf.Workers < 0 {
		return errors.New("workers should not be negative")
	}
	return nil
}

type rawConfig struct {
	BusyPin     string `yaml:"busy-pin"`
	Workers     int    `yaml:"workers"`
	LegacyStats bool   `yaml:"legacy-stats"`
	Verbose     bool   `yaml:"verbose"`
}

// Workers 0 means one worker per CPU. LegacyStats defaults on so the
// output matches the original tool's statistics lines.
var defaultConfig = rawConfig{
	BusyPin:     "",
	Workers:     0,
	LegacyStats: true,
}

// ParseConfigFile loads configuration from filename. A missing file is
// not an error; the defaults apply.
func ParseConfigFile(filename string) (*Config, error) {
	buf, err := ioutil.ReadFile(filename)
	if os.IsNotExist(err) {
		return ParseConfig(nil)
	}
	if err != nil {
		return nil, err
	}
	return ParseConfig(buf)
}

func ParseConfig(buf []byte) (*Config, error) {
	raw := defaultConfig
	if err := yaml.Unmarshal(buf, &raw); err != nil {
		return nil, err
	}

	conf := &Config{
		BusyPin:     raw.BusyPin,
		Workers:     raw.Workers,
		LegacyStats: raw.LegacyStats,
		Verbose:     raw.Verbose,
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}
