package plotly

import "strconv"

// suffix numbers plotly layout keys: the first axes has none.
func suffix(n int) string {
	if n <= 1 {
		return ""
	}
	return strconv.Itoa(n)
}

// XAxisKey is the layout key of the n-th x axis, counting from 1.
func XAxisKey(n int) string { return "xaxis" + suffix(n) }

// YAxisKey is the layout key of the n-th y axis.
func YAxisKey(n int) string { return "yaxis" + suffix(n) }

// XRef is the trace reference to the n-th x axis.
func XRef(n int) string { return "x" + suffix(n) }

// YRef is the trace reference to the n-th y axis.
func YRef(n int) string { return "y" + suffix(n) }

// SceneKey is the layout key and trace reference of the n-th scene.
func SceneKey(n int) string { return "scene" + suffix(n) }
