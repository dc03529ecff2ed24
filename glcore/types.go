package glcore

// Enum is a GL enumerant. Values match the numeric constants of the
// OpenGL specification so that GL-family adapters can pass them through
// to the driver unchanged.
type Enum uint32

// Vertex attribute data types.
const (
	// TypeByte is GL_BYTE.
	TypeByte Enum = 0x1400

	// TypeUnsignedByte is GL_UNSIGNED_BYTE.
	TypeUnsignedByte Enum = 0x1401

	// TypeShort is GL_SHORT.
	TypeShort Enum = 0x1402

	// TypeUnsignedShort is GL_UNSIGNED_SHORT.
	TypeUnsignedShort Enum = 0x1403

	// TypeInt is GL_INT.
	TypeInt Enum = 0x1404

	// TypeUnsignedInt is GL_UNSIGNED_INT.
	TypeUnsignedInt Enum = 0x1405

	// TypeFloat is GL_FLOAT.
	TypeFloat Enum = 0x1406

	// TypeDouble is GL_DOUBLE.
	TypeDouble Enum = 0x140A

	// TypeHalfFloat is GL_HALF_FLOAT.
	TypeHalfFloat Enum = 0x140B

	// TypeFixed is GL_FIXED.
	TypeFixed Enum = 0x140C
)

// Buffer binding targets.
const (
	// TargetArrayBuffer is GL_ARRAY_BUFFER, the target for vertex data.
	TargetArrayBuffer Enum = 0x8892

	// TargetElementArrayBuffer is GL_ELEMENT_ARRAY_BUFFER, the target
	// for index data.
	TargetElementArrayBuffer Enum = 0x8893
)
