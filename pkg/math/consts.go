package math

// Process-wide constants. They are unexported arrays; the accessors return
// copies so callers can never write through them.
var (
	vec2Zero Vec2
	vec3Zero Vec3
	vec4Zero Vec4

	mat3Identity = Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
	mat3Zero     Mat3
	mat4Identity = Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	mat4Zero Mat4
)

// ZeroVec2 returns the zero Vec2.
func ZeroVec2() Vec2 { return vec2Zero }

// ZeroVec3 returns the zero Vec3.
func ZeroVec3() Vec3 { return vec3Zero }

// ZeroVec4 returns the zero Vec4.
func ZeroVec4() Vec4 { return vec4Zero }

// Mat3Identity returns the 3x3 identity matrix.
func Mat3Identity() Mat3 { return mat3Identity }

// Mat3Zero returns the 3x3 zero matrix.
func Mat3Zero() Mat3 { return mat3Zero }

// Mat4Identity returns the 4x4 identity matrix.
func Mat4Identity() Mat4 { return mat4Identity }

// Mat4Zero returns the 4x4 zero matrix.
func Mat4Zero() Mat4 { return mat4Zero }
