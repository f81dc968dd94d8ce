package config

type ParticipantDef struct {
	Name         string  `yaml:"name"`
	Height       float64 `yaml:"height"` // inches
	Speed        float64 `yaml:"speed"`
	Strength     float64 `yaml:"strength"`
	Intelligence float64 `yaml:"intelligence"`
	Creativity   float64 `yaml:"creativity"`
	Note         string  `yaml:"note"`
}

type RoomDef struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Hazards int `yaml:"hazards"`
	Weapons int `yaml:"weapons"`
}
