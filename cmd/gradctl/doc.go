// Command gradctl is the thin CLI wrapper of spec §6.4: a cobra root
// command loads layered configuration (flags > env > YAML file) via
// viper, then runs an interactive command shell over stdin. Command
// dispatch, disambiguation pausing and the per-session command queue
// all live here, outside the core packages (spec §1's "interactive
// command shell" is explicitly out of scope for the core, described
// only via the collaborator interfaces this binary implements).
package main
