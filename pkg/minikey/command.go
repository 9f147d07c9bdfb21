// Copyright 2016-2021 National Technology & Engineering Solutions of Sandia, LLC (NTESS).
// Under the terms of Contract DE-NA0003525 with NTESS, the U.S. Government retains certain
// rights in this software.

package minikey

import (
	log "github.com/sandia-minimega/minikey/pkg/minilog"
)

// CallFunc is the zero-argument action bound to a key. Typed commands are
// wrapped into a CallFunc when they are registered.
type CallFunc func()

type Command struct {
	Key         string `json:"key"`
	Description string `json:"description"` // help text, including the validator description

	// Call to invoke when the key is read
	Call CallFunc `json:"-"`
}

// registry holds the commands for a single Program. Lookups go through the
// map, the help listing follows order.
type registry struct {
	commands map[string]*Command
	order    []string
}

func newRegistry() *registry {
	return &registry{commands: make(map[string]*Command)}
}

func (r *registry) add(c *Command) error {
	switch {
	case c.Key == "":
		return ErrEmptyKey
	case c.Call == nil:
		return ErrNilCall
	}

	if _, ok := r.commands[c.Key]; ok {
		return &DuplicateKeyError{Key: c.Key}
	}

	r.commands[c.Key] = c
	r.order = append(r.order, c.Key)
	return nil
}

func (r *registry) remove(key string) bool {
	if _, ok := r.commands[key]; !ok {
		return false
	}

	delete(r.commands, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return true
}

func (r *registry) lookup(key string) (*Command, bool) {
	c, ok := r.commands[key]
	return c, ok
}

func (r *registry) list() []Command {
	res := make([]Command, 0, len(r.order))
	for _, k := range r.order {
		res = append(res, *r.commands[k])
	}

	return res
}

// AddCommand registers a command that takes no argument. Registering a key
// that is already present returns a *DuplicateKeyError.
func (p *Program) AddCommand(key, description string, call CallFunc) error {
	return p.addCommand(&Command{Key: key, Description: description, Call: call})
}

func (p *Program) addCommand(c *Command) error {
	if err := p.commands.add(c); err != nil {
		log.Warn("unable to register %q: %v", c.Key, err)
		return err
	}

	log.Debug("registered command %q: %v", c.Key, c.Description)
	return nil
}

// RemoveCommand unregisters key, including the builtin "h". Returns false if
// the key was not registered.
func (p *Program) RemoveCommand(key string) bool {
	return p.commands.remove(key)
}

// Lookup returns a copy of the command registered under key.
func (p *Program) Lookup(key string) (Command, bool) {
	c, ok := p.commands.lookup(key)
	if !ok {
		return Command{}, false
	}

	return *c, true
}

// Commands returns the registered commands in registration order.
func (p *Program) Commands() []Command {
	return p.commands.list()
}
