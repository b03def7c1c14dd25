package main

// These constants hold the "long" description of a subcommand. These get printed when running `--help`, for example.
const (
	descriptionXrayImport = `xray-import uploads test results to Xray, on Jira Server / Data Center or on Xray Cloud.

Instances & reusable imports are read from '.xray/config.yaml', which is looked up
from the current working directory upwards. Credentials are only ever read from
the environment.`

	descriptionResults = `'xray-import results' imports result files described entirely by flags.

Example use:

	xray-import results --format junit --results 'build/**/TEST-*.xml' --project-key PROJ --same-execution

	xray-import results --format cucumber-multipart --results cucumber.json --info-file info.json`

	descriptionRun = `'xray-import run' runs an import stored in the config file.

Example use:

	xray-import run nightly-junit --metadata-file .xray/metadata.env`

	descriptionValidate = `'xray-import validate' migrates & validates every import stored in the config file and reports
all invalid ones at once.`

	descriptionFormats = `'xray-import formats' lists every result format together with its endpoint suffix, its label
and whether it accepts globs and importing into the same Test Execution.`
)
