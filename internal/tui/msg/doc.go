// Package msg defines the messages the shop's Bubbletea loop receives from
// its background commands, and the commands that produce them.
//
// Network calls never run inside Update: a command performs the request and
// returns one of these messages, which the model turns into bus events.
package msg
