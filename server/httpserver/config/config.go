package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	DefaultFile     = "todoweb.yaml"
	DefaultPort     = 3000
	DefaultLogLevel = "info"
	DefaultNodeName = "todoweb"
	EnvPrefix       = "TODOWEB"
)

type Configs struct {
	HTTPServer struct {
		Port   int    `yaml:"port" mapstructure:"port"`
		Domain string `yaml:"domain" mapstructure:"domain"`
	} `yaml:"httpserver" mapstructure:"httpserver"`
	LogLevel string `yaml:"logLevel" mapstructure:"logLevel"`
	NodeName string `yaml:"nodeName" mapstructure:"nodeName"`
	View     View   `yaml:"view" mapstructure:"view"`
}

// View configures the to-do page renderer.
type View struct {
	// APIBaseURL is where the page fetches /api/todos from. Empty means
	// LocalURL.
	APIBaseURL string `yaml:"apiBaseUrl" mapstructure:"apiBaseUrl"`
}

func Default() *Configs {
	c := &Configs{
		LogLevel: DefaultLogLevel,
		NodeName: DefaultNodeName,
	}
	c.HTTPServer.Port = DefaultPort
	return c
}

// Addr is the listen address of the http server.
func (c *Configs) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTPServer.Domain, c.HTTPServer.Port)
}

// LocalURL is the api root on this machine, used when no base url is set.
func (c *Configs) LocalURL() string {
	host := c.HTTPServer.Domain
	if host == "" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s:%d", host, c.HTTPServer.Port)
}

// Validate checks the values and normalizes the api base url.
func (c *Configs) Validate() error {
	if c.HTTPServer.Port < 1 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("invalid httpserver.port %d", c.HTTPServer.Port)
	}
	base := strings.TrimRight(strings.TrimSpace(c.View.APIBaseURL), "/")
	if base == "" {
		c.View.APIBaseURL = ""
		return nil
	}
	u, err := url.Parse(base)
	if err != nil {
		return fmt.Errorf("invalid view.apiBaseUrl: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid view.apiBaseUrl %q: scheme must be http or https", base)
	}
	if u.Host == "" {
		return errors.New("invalid view.apiBaseUrl: missing host")
	}
	c.View.APIBaseURL = base
	return nil
}
