package scaffold

// File is one template-rendered output of a scaffolding run.
type File struct {
	Path     string
	Template string
}

// Files lists everything the scaffold renders, in order.
var Files = []File{
	{".gitignore", gitignoreTemplate},
	{".clang-format", clangFormatTemplate},
	{"UserCode/app/app.h", appHeaderTemplate},
	{"UserCode/app/app.c", appSourceTemplate},
	{"UserCode/README.md", readmeTemplate},
}

const gitignoreTemplate = `# build output
build/
*.o
*.d
*.elf
*.bin
*.hex
*.map
*.list

# CubeMX backups
*.ioc.bak
.mxproject

# IDE state
.vscode/
.settings/
.eide/log/
`

const clangFormatTemplate = `BasedOnStyle: LLVM
IndentWidth: 4
ColumnLimit: 120
AlignConsecutiveMacros: true
AllowShortFunctionsOnASingleLine: None
SortIncludes: false
`

const appHeaderTemplate = `/**
 * @file    app.h
 * @author  {{.Author}}
 * @date    {{.Date}}
 *
 * Application entry points, called from the CubeMX-generated main().
 */

#ifndef USERCODE_APP_APP_H
#define USERCODE_APP_APP_H

#ifdef __cplusplus
extern "C" {
#endif

void app_init(void);
void app_loop(void);

#ifdef __cplusplus
}
#endif

#endif /* USERCODE_APP_APP_H */
`

const appSourceTemplate = `/**
 * @file    app.c
 * @author  {{.Author}}
 * @date    {{.Date}}
 */

#include "app.h"

void app_init(void) {
}

void app_loop(void) {
}
`

const readmeTemplate = `# {{.Project}}

User code lives here, outside the CubeMX-generated tree:

- ` + "`app/`" + ` - application entry points (` + "`app_init`" + `/` + "`app_loop`" + `)
- ` + "`bsp/`" + ` - board support: pin wrappers, peripherals glue
- ` + "`lib/`" + ` - vendored third-party code

Regenerating code from the ioc file never touches this directory. Call
` + "`app_init()`" + ` once before the main loop and ` + "`app_loop()`" + ` from it.

Copyright (c) {{.Year}} {{.Author}}
`
