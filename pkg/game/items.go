package game

import (
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/textutil"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// actionVerbs are the verbs resolved through an item's recorded
// action descriptor.
var actionVerbs = map[string]bool{
	"use":      true,
	"eat":      true,
	"read":     true,
	"wave":     true,
	"throw":    true,
	"activate": true,
}

// findItem resolves the player's word to an item: exact name match
// first, then a unique substring match so "bread" finds the
// "loaf of bread".
func (in *Instance) findItem(name string) *world.Item {
	if name == "" {
		return nil
	}
	if it := in.World.FindItem(name); it != nil {
		return it
	}
	lower := strings.ToLower(name)
	var match *world.Item
	for _, it := range in.World.Items {
		if strings.Contains(strings.ToLower(it.Name), lower) {
			if match != nil {
				return nil // ambiguous
			}
			match = it
		}
	}
	return match
}

// ResolveItem dispatches every item-facing verb. Resolvers never
// fail hard: a precondition miss comes back as an invalid command
// state carrying a flavor message, with game state untouched.
func (in *Instance) ResolveItem(cmd CommandState) CommandState {
	if in.Player.Dead {
		cmd.Valid = false
		cmd.Message = in.Message(world.MsgDead, cmd.Verb)
		return cmd
	}

	switch cmd.Verb {
	case "get":
		return in.resolveGet(cmd)
	case "drop":
		return in.resolveDrop(cmd)
	case "pet":
		return in.resolvePet(cmd)
	case "shoo":
		return in.resolveShoo(cmd)
	case "inv":
		return in.resolveInventory(cmd)
	case "look":
		return in.resolveLook(cmd)
	default:
		if actionVerbs[cmd.Verb] {
			return in.resolveAction(cmd)
		}
		cmd.Valid = false
		cmd.Message = in.Message(world.MsgUnknown, cmd.Verb)
		return cmd
	}
}

func (in *Instance) resolveGet(cmd CommandState) CommandState {
	it := in.findItem(cmd.Modifier)
	if it == nil || !it.Location.InRoom(in.Player.Room) {
		cmd.Valid = false
		cmd.Message = in.Message(world.MsgGetFailed, cmd.Modifier)
		return cmd
	}
	if it.Pettable() {
		cmd.Valid = false
		cmd.Message = in.Message(world.MsgGetAlive, it.Name)
		return cmd
	}
	it.Location = world.CarriedLocation()
	cmd.Valid = true
	cmd.Message = in.Message(world.MsgGetSuccess, it.Name)
	return cmd
}

func (in *Instance) resolveDrop(cmd CommandState) CommandState {
	it := in.findItem(cmd.Modifier)
	if it == nil || !it.Location.IsCarried() {
		cmd.Valid = false
		cmd.Message = in.Message(world.MsgDropFailed, cmd.Modifier)
		return cmd
	}
	it.Location = world.RoomLocation(in.Player.Room)
	cmd.Valid = true
	cmd.Message = in.Message(world.MsgDropSuccess, it.Name)
	return cmd
}

func (in *Instance) resolvePet(cmd CommandState) CommandState {
	it := in.findItem(cmd.Modifier)
	if it == nil || !it.Pettable() ||
		(!it.Location.InRoom(in.Player.Room) && !it.Location.IsWorn()) {
		cmd.Valid = false
		cmd.Message = in.Message(world.MsgPetFailed, cmd.Modifier)
		return cmd
	}
	it.Location = world.WornLocation()
	in.AwardPoints(it.Name, it.Points)
	cmd.Valid = true
	cmd.Message = in.Message(world.MsgPetSuccess, it.Name)
	return cmd
}

func (in *Instance) resolveShoo(cmd CommandState) CommandState {
	it := in.findItem(cmd.Modifier)
	if it == nil || !it.Location.IsWorn() {
		cmd.Valid = false
		cmd.Message = in.Message(world.MsgShooFailed, cmd.Modifier)
		return cmd
	}
	it.Location = world.RoomLocation(it.Action.Value)
	cmd.Valid = true
	cmd.Message = in.Message(world.MsgShooSuccess, it.Name)
	return cmd
}

func (in *Instance) resolveInventory(cmd CommandState) CommandState {
	cmd.Valid = true
	carried := in.World.CarriedItems()
	if len(carried) == 0 {
		cmd.Message = in.Message(world.MsgInvEmpty, "")
		return cmd
	}
	cmd.Message = "You are carrying: " + textutil.JoinList(carried) + "."
	return cmd
}

func (in *Instance) resolveLook(cmd CommandState) CommandState {
	if cmd.Modifier == "" {
		cmd.Valid = true
		cmd.Message = in.Message(world.MsgLookNothing, "")
		return cmd
	}
	it := in.findItem(cmd.Modifier)
	if it == nil ||
		(!it.Location.IsCarried() && !it.Location.InRoom(in.Player.Room) && !it.Location.IsWorn()) {
		cmd.Valid = false
		cmd.Message = in.Message(world.MsgLookNotHere, cmd.Modifier)
		return cmd
	}
	cmd.Valid = true
	cmd.Message = it.Description
	return cmd
}

// resolveAction handles use/eat/read/wave/throw/activate: the item
// must be carried and its recorded verb must match the issued one.
func (in *Instance) resolveAction(cmd CommandState) CommandState {
	it := in.findItem(cmd.Modifier)
	if it == nil || !it.Location.IsCarried() {
		cmd.Valid = false
		cmd.Message = in.Message(world.MsgNotCarried, cmd.Modifier)
		return cmd
	}
	if it.Action.Verb != cmd.Verb {
		cmd.Valid = false
		cmd.Message = in.Message(world.MsgWrongVerb, it.Name)
		return cmd
	}

	switch it.Action.Kind {
	case world.ActionHealth:
		return in.applyHealthItem(cmd, it)
	case world.ActionFortune:
		in.AwardPoints(it.Name, it.Points)
		cmd.Valid = true
		cmd.Message = in.Message(world.MsgFortune, it.Name) + "\n" +
			in.Message(world.MsgFortuneText, "")
		return cmd
	case world.ActionUnlock:
		return in.applyUnlockItem(cmd, it)
	case world.ActionTeleport:
		in.AwardPoints(it.Name, it.Points)
		in.Player.Room = it.Action.Value
		in.ClaimRoom()
		cmd.Valid = true
		cmd.Message = in.Message(world.MsgTeleport, it.Name)
		return cmd
	case world.ActionFollow:
		in.AwardPoints(it.Name, it.Points)
		it.Location = world.WornLocation()
		cmd.Valid = true
		cmd.Message = in.Message(world.MsgFollow, it.Name)
		return cmd
	default:
		cmd.Valid = false
		cmd.Message = in.Message(world.MsgWrongVerb, it.Name)
		return cmd
	}
}

func (in *Instance) applyHealthItem(cmd CommandState, it *world.Item) CommandState {
	delta := it.Action.Value
	atMax := in.Player.Health >= in.Player.MaxHealth

	in.ApplyHealthDelta(delta)
	in.AwardPoints(it.Name, it.Points)

	cmd.Valid = true
	switch {
	case delta > 0 && atMax:
		cmd.Message = in.Message(world.MsgHealthOver, it.Name)
	case delta >= 0:
		cmd.Message = in.Message(world.MsgHealthUp, it.Name)
	default:
		cmd.Message = in.Message(world.MsgHealthDown, it.Name)
	}
	return cmd
}

func (in *Instance) applyUnlockItem(cmd CommandState, it *world.Item) CommandState {
	u := it.Action.Unlock
	if u == nil {
		cmd.Valid = false
		cmd.Message = in.Message(world.MsgWrongVerb, it.Name)
		return cmd
	}
	room := in.World.Room(u.Room)
	if room == nil {
		cmd.Valid = false
		cmd.Message = in.Message(world.MsgUnknown, it.Name)
		return cmd
	}
	room.SetExit(u.Direction, world.ExitTo(u.Target))
	in.AwardPoints(it.Name, it.Points)
	cmd.Valid = true
	cmd.Message = in.Message(world.MsgUnlock, it.Name)
	return cmd
}
