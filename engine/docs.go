/*
	opengl renderer for a single textured mesh

	Window
		glfw window, core 4.1 context, input callbacks
	Renderer
		program
			vertex, fragment shader
			active attributes and uniforms
		mesh buffer
			vertex array object
			interleaved vertices (position, normal, uv), uint16 indices
		texture
			diffuse map in unit 0
		light, material
			phong uniforms, light fixed in world space

	all calls must happen on the thread that created the window.
*/

package engine
