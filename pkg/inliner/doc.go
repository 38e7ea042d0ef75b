/*
Package inliner splices shader sources into an HTML page at build time.

A template marks its insertion points with a comment of the form

	<!-- SHADERS GO HERE -->

on a line of its own. Every marker is replaced by one script element per
shader fragment, in the order the fragments were given:

	<script id="tri-vs" type="x-shader/x-vertex">
	        void main() {}
	</script>

The opening and closing tags take the indentation of the marker line and the
shader body is indented one tab (eight spaces by default) deeper. Fragment
kinds are derived from the file extension: ".vert" files are vertex shaders
and ".frag" files are fragment shaders. Any other extension is rejected
before the template is touched.
*/
package inliner
