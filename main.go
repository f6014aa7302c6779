// minidom parses a small subset of HTML markup into a flat document store.
//
// Usage:
//
//	# Parse a file and print the nodes as JSON
//	minidom parse page.html
//
//	# Parse stdin and print the nested tree
//	cat page.html | minidom parse --format tree
//
//	# Run the HTTP service
//	minidom serve
//
//	# Mint a bearer token for the protected routes
//	minidom token --subject ci --ttl 1h
package main

func main() {
	Execute()
}
