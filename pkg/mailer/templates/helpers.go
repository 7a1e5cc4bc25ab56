package templates

import (
	"time"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

func WithSiteURL(url string) Option { return func(d *EmailData) { d.SiteURL = url } }

// NewWelcomeData fills the welcome mail fields, then applies opts.
func NewWelcomeData(appName, companyName, name, email string, opts ...Option) EmailData {
	d := EmailData{
		Name:        name,
		Email:       email,
		AppName:     appName,
		CompanyName: companyName,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}
