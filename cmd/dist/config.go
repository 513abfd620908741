// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-statfn/statfn/stats"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// config holds the settings shared by all subcommands.
type config struct {
	ConfigFile string  `mapstructure:"config"`
	Dist       string  `mapstructure:"dist"`
	Dof        float64 `mapstructure:"dof"`
	Dof1       float64 `mapstructure:"dof1"`
	Dof2       float64 `mapstructure:"dof2"`
	Digits     int     `mapstructure:"digits"`
	Workers    int     `mapstructure:"workers"`
	Verbose    bool    `mapstructure:"verbose"`
}

func addConfigFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Configuration file (TOML, YAML or JSON)")
	fs.String("dist", "t", "Distribution: t or f")
	fs.Float64("dof", 1, "Degrees of freedom of the t-distribution (inf for the normal limit)")
	fs.Float64("dof1", 1, "Numerator degrees of freedom of the F-distribution")
	fs.Float64("dof2", 1, "Denominator degrees of freedom of the F-distribution")
	fs.Int("digits", 6, "Significant digits to print (0 for the shortest exact form)")
	fs.Int("workers", 0, "Goroutines evaluating input (0 for GOMAXPROCS)")
	fs.Bool("verbose", false, "Print detailed execution info")
}

// loadConfig merges flags, environment, and the configuration file
// named by the config key, in decreasing order of precedence.
func loadConfig(v *viper.Viper) (*config, error) {
	v.SetEnvPrefix("dist")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", file)
		}
		log.WithField("file", v.ConfigFileUsed()).Debug("loaded configuration")
	}

	var conf config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, errors.Wrap(err, "decoding configuration")
	}
	return &conf, nil
}

// distribution is what the subcommands need from a distribution.
type distribution interface {
	stats.Dist
	stats.Sampler
	Mean() float64
	Variance() float64
}

// dist returns the distribution conf describes, and a name for it.
func (conf *config) dist() (distribution, string, error) {
	switch strings.ToLower(conf.Dist) {
	case "t":
		if !(conf.Dof > 0) {
			return nil, "", errors.Errorf("--dof must be positive, got %v", conf.Dof)
		}
		return stats.TDist{V: conf.Dof}, fmt.Sprintf("t(%v)", conf.Dof), nil
	case "f":
		for _, d := range []struct {
			flag string
			v    float64
		}{{"dof1", conf.Dof1}, {"dof2", conf.Dof2}} {
			if !(d.v > 0) || math.IsInf(d.v, 1) {
				return nil, "", errors.Errorf("--%s must be positive and finite, got %v", d.flag, d.v)
			}
		}
		return stats.FDist{D1: conf.Dof1, D2: conf.Dof2}, fmt.Sprintf("F(%v, %v)", conf.Dof1, conf.Dof2), nil
	}
	return nil, "", errors.Errorf("unknown distribution %q (want t or f)", conf.Dist)
}
