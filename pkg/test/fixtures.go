package test

// SampleConfigYAML returns a launcher configuration that overrides every field.
func SampleConfigYAML() string {
	return `runtime:
  path: /opt/docker-desktop/bin/docker-desktop
  probe: [podman, info]
poll:
  interval: 500ms
  attempts: 10
compose:
  command: [docker, compose]
  file: deploy/compose.yaml
  project_dir: /srv/app
stack:
  name: Demo Stack
  services:
    - Start Postgres
  endpoints:
    - name: Web
      url: http://localhost:8080
  notice: Images are large
`
}

// PartialConfigYAML only overrides the poll budget.
func PartialConfigYAML() string {
	return `poll:
  attempts: 5
`
}
