package game

import (
	"github.com/jwebster45206/adventure-engine/pkg/textutil"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Move validates and executes a "go <direction>" command. On success
// the player is relocated, the room is claimed for points, and the
// message carries the room description with the open paths. Failure
// leaves all state untouched.
func (in *Instance) Move(cmd CommandState) CommandState {
	if in.Player.Dead {
		cmd.Valid = false
		cmd.Message = in.Message(world.MsgDead, "travel")
		return cmd
	}

	d, ok := world.ParseDirection(cmd.Modifier)
	if !ok {
		cmd.Valid = false
		cmd.Message = "Wrong Way!"
		return cmd
	}

	room := in.CurrentRoom()
	if room == nil {
		cmd.Valid = false
		cmd.Message = in.Message(world.MsgBlocked, d.String())
		return cmd
	}

	exit := room.Exit(d)
	target, exists := exit.Room()
	if !exists {
		cmd.Valid = false
		cmd.Message = in.Message(world.MsgBlocked, d.String())
		return cmd
	}

	in.Player.Room = target
	in.ClaimRoom()

	cmd.Valid = true
	cmd.Message = in.DescribeRoom()
	return cmd
}

// DescribeRoom composes the current room's description and the
// "You can go ..." path sentence.
func (in *Instance) DescribeRoom() string {
	room := in.CurrentRoom()
	if room == nil {
		return ""
	}
	var dirs []string
	for _, d := range room.ExitDirections() {
		dirs = append(dirs, d.String())
	}
	return room.Description + "\n" + textutil.PathText(dirs)
}

// RoomItemsText lists the items visible in the current room, or ""
// when the room is bare.
func (in *Instance) RoomItemsText() string {
	names := in.World.ItemsInRoom(in.Player.Room)
	if len(names) == 0 {
		return ""
	}
	return "You see: " + textutil.JoinList(names) + "."
}
