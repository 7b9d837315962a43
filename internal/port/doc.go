// Package port implements bind-address availability probing for the
// launchpad validate command.
//
// The probe is diagnostic only. The launch sequence itself never checks
// the port: after process replacement the launcher has no visibility, and
// a bind failure belongs entirely to the server process. The validate
// command uses the probe to warn operators about an occupied port before
// they trigger a deploy.
package port
