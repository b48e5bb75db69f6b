// Package timezone pins every timestamp the service produces to the
// configured application timezone.
//
//	now := timezone.Now() // current time in app timezone
//
// The timezone comes from APP_TIMEZONE and must be an IANA name such as
// "UTC" or "Europe/London". It is resolved once, when the package is imported.
package timezone
