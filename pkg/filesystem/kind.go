package filesystem

import "os"

// EntryKind classifies a filesystem object by its type bits.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
	KindSocket
	KindCharacter
	KindBlock
	KindFifo
	KindUnknown
)

// KindFromMode derives the kind of a filesystem object from its mode. The
// predicates run in a fixed order (file, directory, socket, character
// device, block device, fifo) so a given bit pattern always yields the same
// kind.
func KindFromMode(mode os.FileMode) EntryKind {
	switch {
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindDirectory
	case mode&os.ModeSocket != 0:
		return KindSocket
	case mode&os.ModeCharDevice != 0:
		return KindCharacter
	case mode&os.ModeDevice != 0:
		return KindBlock
	case mode&os.ModeNamedPipe != 0:
		return KindFifo
	default:
		return KindUnknown
	}
}

func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "File"
	case KindDirectory:
		return "Directory"
	case KindSocket:
		return "Socket"
	case KindCharacter:
		return "Character"
	case KindBlock:
		return "Block"
	case KindFifo:
		return "Fifo"
	default:
		return "Unknown"
	}
}
