package command

import (
	"strconv"
	"strings"

	"ColonyCommand/internal/config"
)

// Parse turns one input line into a command. Parsing is pure syntax; every
// game-state check happens in Execute.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, &UnknownCommandError{Name: ""}
	}
	verb := strings.ToLower(fields[0])
	args := fields[1:]

	switch verb {
	case "help":
		return &HelpCommand{}, nil
	case "status":
		cmd := &StatusCommand{}
		if len(args) > 0 {
			cmd.Planet = strings.Join(args, " ")
		}
		return cmd, nil
	case "map":
		return &MapCommand{}, nil
	case "ships":
		return &ShipsCommand{}, nil
	case "fleets":
		return &FleetsCommand{}, nil
	case "build":
		if len(args) < 2 {
			return nil, &MissingArgumentsError{Command: "build", Expected: "build <planet> <structure>"}
		}
		return &BuildCommand{Planet: args[0], Structure: args[1]}, nil
	case "build_ship":
		if len(args) < 2 {
			return nil, &MissingArgumentsError{Command: "build_ship", Expected: "build_ship <planet> <ship> [count]"}
		}
		count := 1
		if len(args) > 2 {
			n, err := strconv.Atoi(args[2])
			if err != nil || n < 1 {
				return nil, &InvalidArgumentError{Command: "build_ship", Argument: args[2], Reason: "count must be a positive number"}
			}
			count = n
		}
		return &BuildShipCommand{Planet: args[0], Ship: args[1], Count: count}, nil
	case "cancel":
		if len(args) < 1 {
			return nil, &MissingArgumentsError{Command: "cancel", Expected: "cancel <planet>"}
		}
		return &CancelCommand{Target: args[0]}, nil
	case "fleet":
		return parseFleet(args)
	case "end_turn", "end", "endturn":
		return &EndTurnCommand{}, nil
	default:
		return nil, &UnknownCommandError{Name: verb}
	}
}

func parseFleet(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, &MissingArgumentsError{
			Command:  "fleet",
			Expected: "fleet <create|add|remove|disband|merge|split|move|cancel-move|bombard|cancel-bombard|colonize|status> ...",
		}
	}
	action := strings.ToLower(args[0])
	rest := args[1:]

	switch action {
	case "create":
		if len(rest) < 3 {
			return nil, &MissingArgumentsError{Command: "fleet create", Expected: "fleet create <name> <planet> <ship:count>..."}
		}
		ships, err := parseShipCounts("fleet create", rest[2:])
		if err != nil {
			return nil, err
		}
		return &FleetCreateCommand{Name: rest[0], Planet: rest[1], Ships: ships}, nil
	case "add":
		if len(rest) < 2 {
			return nil, &MissingArgumentsError{Command: "fleet add", Expected: "fleet add <fleet> <ship:count>..."}
		}
		ships, err := parseShipCounts("fleet add", rest[1:])
		if err != nil {
			return nil, err
		}
		return &FleetAddCommand{Fleet: rest[0], Ships: ships}, nil
	case "remove":
		if len(rest) < 2 {
			return nil, &MissingArgumentsError{Command: "fleet remove", Expected: "fleet remove <fleet> <ship:count>..."}
		}
		ships, err := parseShipCounts("fleet remove", rest[1:])
		if err != nil {
			return nil, err
		}
		return &FleetRemoveCommand{Fleet: rest[0], Ships: ships}, nil
	case "disband":
		if len(rest) < 1 {
			return nil, &MissingArgumentsError{Command: "fleet disband", Expected: "fleet disband <fleet>"}
		}
		return &FleetDisbandCommand{Fleet: rest[0]}, nil
	case "merge":
		if len(rest) < 2 {
			return nil, &MissingArgumentsError{Command: "fleet merge", Expected: "fleet merge <from> <into>"}
		}
		return &FleetMergeCommand{From: rest[0], Into: rest[1]}, nil
	case "split":
		if len(rest) < 3 {
			return nil, &MissingArgumentsError{Command: "fleet split", Expected: "fleet split <fleet> <new-name> <ship:count>..."}
		}
		ships, err := parseShipCounts("fleet split", rest[2:])
		if err != nil {
			return nil, err
		}
		return &FleetSplitCommand{Fleet: rest[0], Name: rest[1], Ships: ships}, nil
	case "move":
		if len(rest) < 2 {
			return nil, &MissingArgumentsError{Command: "fleet move", Expected: "fleet move <fleet> <planet>"}
		}
		return &FleetMoveCommand{Fleet: rest[0], Planet: rest[1]}, nil
	case "cancel-move":
		if len(rest) < 1 {
			return nil, &MissingArgumentsError{Command: "fleet cancel-move", Expected: "fleet cancel-move <fleet>"}
		}
		return &FleetCancelMoveCommand{Fleet: rest[0]}, nil
	case "bombard":
		if len(rest) < 1 {
			return nil, &MissingArgumentsError{Command: "fleet bombard", Expected: "fleet bombard <fleet>"}
		}
		return &FleetBombardCommand{Fleet: rest[0]}, nil
	case "cancel-bombard":
		if len(rest) < 1 {
			return nil, &MissingArgumentsError{Command: "fleet cancel-bombard", Expected: "fleet cancel-bombard <fleet>"}
		}
		return &FleetCancelBombardCommand{Fleet: rest[0]}, nil
	case "colonize":
		if len(rest) < 1 {
			return nil, &MissingArgumentsError{Command: "fleet colonize", Expected: "fleet colonize <fleet>"}
		}
		return &FleetColonizeCommand{Fleet: rest[0]}, nil
	case "status":
		if len(rest) < 1 {
			return nil, &MissingArgumentsError{Command: "fleet status", Expected: "fleet status <fleet>"}
		}
		return &FleetStatusCommand{Fleet: rest[0]}, nil
	default:
		return nil, &InvalidArgumentError{
			Command:  "fleet",
			Argument: args[0],
			Reason:   "valid actions are: create, add, remove, disband, merge, split, move, cancel-move, bombard, cancel-bombard, colonize, status",
		}
	}
}

// parseShipCounts reads ship:count pairs; a bare kind means one ship.
func parseShipCounts(cmd string, args []string) (map[config.ShipID]int, error) {
	ships := make(map[config.ShipID]int)
	for _, arg := range args {
		kind := arg
		count := 1
		if i := strings.IndexByte(arg, ':'); i >= 0 {
			kind = arg[:i]
			n, err := strconv.Atoi(arg[i+1:])
			if err != nil || n < 1 {
				return nil, &InvalidArgumentError{Command: cmd, Argument: arg, Reason: "count must be a positive number"}
			}
			count = n
		}
		if kind == "" {
			return nil, &InvalidArgumentError{Command: cmd, Argument: arg, Reason: "missing ship kind"}
		}
		ships[strings.ToLower(kind)] += count
	}
	return ships, nil
}
