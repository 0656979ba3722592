package main

import (
	"io"
	"log"
	"strings"

	"github.com/phorward/charclass"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	_defaultFormat = "notation"
	_envPrefix     = "charclass"
)

type app struct {
	v       *viper.Viper
	log     *log.Logger
	classes map[string]charclass.Class
}

func newApp() *app {
	v := viper.New()
	v.SetEnvPrefix(_envPrefix)
	v.AutomaticEnv()
	v.SetDefault("format", _defaultFormat)
	return &app{
		v:   v,
		log: log.New(io.Discard, "charclass: ", 0),
	}
}

func (a *app) bindFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String("config", "", "YAML file with named classes")
	f.StringP("format", "f", _defaultFormat, "output format: notation, ranges or yaml")
	f.BoolP("verbose", "v", false, "log configuration details to stderr")

	for _, name := range []string{"config", "format", "verbose"} {
		if err := a.v.BindPFlag(name, f.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// loadConfig reads the config file, if any, and parses the named classes
// it declares.
func (a *app) loadConfig(cmd *cobra.Command) error {
	if a.v.GetBool("verbose") {
		a.log.SetOutput(cmd.ErrOrStderr())
	}

	if file := a.v.GetString("config"); file != "" {
		a.v.SetConfigFile(file)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config %s", file)
		}
		a.log.Printf("using config %s", a.v.ConfigFileUsed())
	}

	a.classes = make(map[string]charclass.Class)
	for name, notation := range a.v.GetStringMapString("classes") {
		c, err := charclass.Parse(notation)
		if err != nil {
			return errors.Wrapf(err, "config class %q", name)
		}
		a.classes[name] = c
		a.log.Printf("class @%s = %v", name, c)
	}
	return nil
}

// operand resolves a command-line argument: either notation or @name.
func (a *app) operand(arg string) (charclass.Class, error) {
	if name, ok := strings.CutPrefix(arg, "@"); ok {
		c, ok := a.classes[strings.ToLower(name)]
		if !ok {
			return charclass.Class{}, errors.Errorf("unknown class @%s", name)
		}
		return c, nil
	}
	c, err := charclass.Parse(arg)
	if err != nil {
		return charclass.Class{}, errors.Wrapf(err, "operand %q", arg)
	}
	return c, nil
}

func (a *app) operands(args []string) ([]charclass.Class, error) {
	cs := make([]charclass.Class, len(args))
	for i, arg := range args {
		c, err := a.operand(arg)
		if err != nil {
			return nil, err
		}
		cs[i] = c
	}
	return cs, nil
}
