// Package config loads and validates daisy.yaml, the project file that
// drives the gallery build, the preview server and publishing.
//
// # Configuration File Structure
//
//	site:
//	  title: DaisyUI Components
//	  theme: dark
//	  stylesheets:
//	    - https://cdn.jsdelivr.net/npm/daisyui@4/dist/full.min.css
//	build:
//	  out_dir: dist
//	  workers: 4
//	preview:
//	  host: localhost
//	  port: 4000
//	  debounce: 200ms
//	  reload: true
//	publish:
//	  bucket: my-gallery
//	  prefix: components/
//	log:
//	  level: info
//	  format: auto
//
// Keys that are absent keep their defaults, and a project without a
// daisy.yaml behaves as if every key were absent.
//
// # Usage
//
//	cfg, err := config.Discover(".")
//	if err != nil {
//	    errors.PrintError(os.Stderr, err)
//	    os.Exit(1)
//	}
//	fmt.Println("Preview:", cfg.PreviewURL())
package config
