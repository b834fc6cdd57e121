package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	pxfuri "github.com/machinafabric/pxf-uri-go"
	"github.com/machinafabric/pxf-uri-go/internal/config"
)

type optionView struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

type locatorView struct {
	URI      string       `json:"uri" yaml:"uri"`
	Protocol string       `json:"protocol" yaml:"protocol"`
	Host     string       `json:"host" yaml:"host"`
	Port     string       `json:"port" yaml:"port"`
	Path     string       `json:"path" yaml:"path"`
	Options  []optionView `json:"options" yaml:"options"`
	Warnings []string     `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func newLocatorView(u *pxfuri.PxfUri) locatorView {
	v := locatorView{
		URI:      u.Raw,
		Protocol: u.Protocol,
		Host:     u.Host,
		Port:     u.Port,
		Path:     u.Path,
		Options:  make([]optionView, 0, len(u.Options)),
	}
	for _, opt := range u.Options {
		v.Options = append(v.Options, optionView{Key: opt.Key, Value: opt.Value})
	}
	for _, w := range u.Warnings {
		v.Warnings = append(v.Warnings, w.String())
	}
	return v
}

func writeLocator(w io.Writer, format string, v locatorView) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case config.OutputText:
		fmt.Fprintf(w, "uri:      %s\n", v.URI)
		fmt.Fprintf(w, "protocol: %s\n", v.Protocol)
		fmt.Fprintf(w, "host:     %s\n", v.Host)
		fmt.Fprintf(w, "port:     %s\n", v.Port)
		fmt.Fprintf(w, "path:     %s\n", v.Path)
		for _, opt := range v.Options {
			fmt.Fprintf(w, "option:   %s=%s\n", opt.Key, opt.Value)
		}
		for _, warning := range v.Warnings {
			fmt.Fprintf(w, "warning:  %s\n", warning)
		}
		return nil
	}
	return fmt.Errorf("unknown format: %s", format)
}
