package format

type (
	ObjectType      uint8
	Op              uint8
	CompressionType uint8
)

const (
	TypeObject        ObjectType = 0x1 // TypeObject is the base object block shared by every entity.
	TypeItem          ObjectType = 0x2 // TypeItem is an item.
	TypeContainer     ObjectType = 0x3 // TypeContainer is a bag's slot block.
	TypeUnit          ObjectType = 0x4 // TypeUnit is a creature or player unit block.
	TypePlayer        ObjectType = 0x5 // TypePlayer is the player block.
	TypeSkill         ObjectType = 0x6 // TypeSkill is the skill table.
	TypePVP           ObjectType = 0x7 // TypePVP is one PVP bracket record.
	TypeGameObject    ObjectType = 0x8 // TypeGameObject is a world object.
	TypeDynamicObject ObjectType = 0x9 // TypeDynamicObject is a spell area object.
	TypeCorpse        ObjectType = 0xA // TypeCorpse is a corpse.

	OpCreate Op = 0x1 // OpCreate carries a full snapshot.
	OpUpdate Op = 0x2 // OpUpdate carries a delta.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// ObjectTypes lists every object type in wire order.
var ObjectTypes = []ObjectType{
	TypeObject, TypeItem, TypeContainer, TypeUnit, TypePlayer,
	TypeSkill, TypePVP, TypeGameObject, TypeDynamicObject, TypeCorpse,
}

func (t ObjectType) String() string {
	switch t {
	case TypeObject:
		return "Object"
	case TypeItem:
		return "Item"
	case TypeContainer:
		return "Container"
	case TypeUnit:
		return "Unit"
	case TypePlayer:
		return "Player"
	case TypeSkill:
		return "Skill"
	case TypePVP:
		return "PVP"
	case TypeGameObject:
		return "GameObject"
	case TypeDynamicObject:
		return "DynamicObject"
	case TypeCorpse:
		return "Corpse"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is a known object type.
func (t ObjectType) Valid() bool {
	return t >= TypeObject && t <= TypeCorpse
}

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "Create"
	case OpUpdate:
		return "Update"
	default:
		return "Unknown"
	}
}

// Valid reports whether o is a known op.
func (o Op) Valid() bool {
	return o == OpCreate || o == OpUpdate
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a lowercase codec name to its type.
func ParseCompression(s string) (CompressionType, bool) {
	switch s {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
