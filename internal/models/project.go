package models

// Project represents a portfolio project
type Project struct {
	Slug  string   `json:"slug" yaml:"slug"`
	Name  string   `json:"name" yaml:"name"`
	Stack []string `json:"stack" yaml:"stack"`
	Blurb string   `json:"blurb" yaml:"blurb"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects"`
}
