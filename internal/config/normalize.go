package config

import "strings"

func (c *Config) normalize() error {
	c.Tail.Encoding = strings.TrimSpace(c.Tail.Encoding)
	if c.Tail.Encoding == "" {
		c.Tail.Encoding = defaultEncoding
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	if c.Logging.Dir != "" {
		expanded, err := expandPath(c.Logging.Dir)
		if err != nil {
			return err
		}
		c.Logging.Dir = expanded
	}
	return nil
}
