package scaffold

// defaultConfig is the built-in scaffolding config, used when no --config
// file is given. It wires the UserCode tree into the build files CubeMX
// generates for the Makefile and CMake toolchains; patches against files
// that were not generated are skipped.
const defaultConfig = `directories = [
    "UserCode/app",
    "UserCode/bsp",
    "UserCode/lib",
]

# Makefile toolchain: register UserCode sources and include paths.
[[patch]]
mode = "append"
file = "Makefile"
after = "Core/Src/main.c"
insert = 'UserCode/app/app.c \'
marker = "UserCode/app/app.c"

[[patch]]
mode = "append"
file = "Makefile"
after = "-ICore/Inc"
insert = '-IUserCode/app \'
marker = "-IUserCode/app"

# Makefile toolchain: CubeMX leaves FLOAT-ABI empty unless the FPU was set
# up in the ioc; force hardware float so printf of floats links.
[[patch]]
mode = "regex_replace"
file = "Makefile"
pattern = '(?m)^FLOAT-ABI[ \t]*=[ \t]*$'
insert = 'FLOAT-ABI = -mfloat-abi=hard'

# CMake toolchain: CubeMX marks the user extension points with comments.
[[patch]]
mode = "replace"
file = "CMakeLists.txt"
find = "    # Add user sources here"
insert = "    # Add user sources here\n    UserCode/app/app.c"

[[patch]]
mode = "replace"
file = "CMakeLists.txt"
find = "    # Add user defined include paths"
insert = "    # Add user defined include paths\n    UserCode/app"
`
