package main

import (
	"os"

	"github.com/osse101/SchalePlanner_Go/internal/gamedata"
)

type CheckDataCommand struct{}

func (c *CheckDataCommand) Name() string {
	return "check-data"
}

func (c *CheckDataCommand) Description() string {
	return "Validate game tables (DATA_DIR or an argument, embedded fixtures otherwise)"
}

func (c *CheckDataCommand) Run(args []string) error {
	dir := os.Getenv("DATA_DIR")
	if len(args) > 0 {
		dir = args[0]
	}
	set, err := gamedata.Load(dir)
	if err != nil {
		return err
	}
	PrintHeader("Checking game data (" + set.Source + ")")
	PrintSuccess("Tables decoded and schema-valid")
	if set.IsFixture() {
		PrintWarning("Embedded tables are placeholders; set DATA_DIR to exported game data")
	}
	PrintInfo("Account levels to %d, student levels to %d, relationship ranks to %d, %d gifts",
		set.AccountExp.MaxLevel(), set.StudentExp.MaxLevel(), set.RelationshipExp.MaxLevel(), set.Gifts.Len())

	if err := set.Verify(); err != nil {
		PrintWarning("%v", err)
		return nil
	}
	PrintSuccess("No gaps in leveling tables")
	return nil
}
