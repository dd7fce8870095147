package commands

var catalogue = []Info{
	{
		Name:        "pwd",
		Description: "Prints the current working directory path",
		Usage:       "pwd [OPTION]",
		Why:         "Essential for navigation - helps you understand your current location in the file system. Every Linux user needs to know where they are before performing operations.",
		Examples: []Example{
			{"pwd", "Shows current directory like /home/user/documents"},
		},
		Options: []Option{
			{"-L", "Print logical path (follow symbolic links)"},
			{"-P", "Print physical path (avoid symbolic links)"},
		},
	},
	{
		Name:        "ls",
		Description: "Lists directory contents and file information",
		Usage:       "ls [OPTION] [FILE]",
		Why:         "Fundamental for file system exploration. You need to see what files and directories exist before you can work with them. One of the most used Linux commands.",
		Examples: []Example{
			{"ls", "Lists files and directories in current location"},
			{"ls -l", "Shows detailed info: permissions, size, date"},
			{"ls -la", "Includes hidden files (starting with .)"},
			{"ls -lh", "Human-readable file sizes (KB, MB, GB)"},
		},
		Options: []Option{
			{"-l", "Long format with detailed information"},
			{"-a", "Show hidden files (starting with .)"},
			{"-h", "Human-readable file sizes"},
			{"-t", "Sort by modification time"},
			{"-r", "Reverse order"},
		},
	},
	{
		Name:        "cd",
		Description: "Changes the current working directory",
		Usage:       "cd [DIRECTORY]",
		Why:         "Essential for navigation. You need to move between directories to organize files, run programs, and access different parts of your system efficiently.",
		Examples: []Example{
			{"cd /home/user", "Go to specific directory path"},
			{"cd ..", "Go up one directory level"},
			{"cd ~", "Go to home directory"},
			{"cd -", "Go to previous directory"},
		},
		Options: []Option{
			{"~", "Home directory shortcut"},
			{"..", "Parent directory"},
			{"-", "Previous directory"},
			{"/", "Root directory"},
		},
	},
	{
		Name:        "touch",
		Description: "Creates empty files or updates file timestamps",
		Usage:       "touch [OPTION] FILE",
		Why:         "Quick way to create empty files for testing, scripting, or as placeholders. Also used to update file modification times without changing content.",
		Examples: []Example{
			{"touch newfile.txt", "Creates empty file named newfile.txt"},
			{"touch file1.txt file2.txt", "Creates multiple files at once"},
			{"touch -t 202312251200 file.txt", "Sets specific timestamp"},
		},
		Options: []Option{
			{"-t", "Set specific timestamp"},
			{"-d", "Set timestamp using date string"},
			{"-c", "Don't create file if it doesn't exist"},
		},
	},
	{
		Name:        "mkdir",
		Description: "Creates directories (folders)",
		Usage:       "mkdir [OPTION] DIRECTORY",
		Why:         "Essential for organizing files. Create directory structures to keep your system organized and projects well-structured. Fundamental for file management.",
		Examples: []Example{
			{"mkdir newfolder", "Creates directory named newfolder"},
			{"mkdir -p path/to/deep/folder", "Creates nested directories"},
			{"mkdir folder1 folder2 folder3", "Creates multiple directories"},
		},
		Options: []Option{
			{"-p", "Create parent directories as needed"},
			{"-m", "Set permissions for new directory"},
			{"-v", "Verbose output showing what's created"},
		},
	},
	{
		Name:        "cp",
		Description: "Copies files and directories",
		Usage:       "cp [OPTION] SOURCE DESTINATION",
		Why:         "Critical for backup, file duplication, and moving data. Essential for protecting important files and distributing content across your system.",
		Examples: []Example{
			{"cp file.txt backup.txt", "Copy file to new name"},
			{"cp file.txt /home/user/", "Copy to different directory"},
			{"cp -r folder/ backup_folder/", "Copy entire directory"},
		},
		Options: []Option{
			{"-r", "Copy directories recursively"},
			{"-i", "Prompt before overwriting"},
			{"-v", "Verbose output"},
			{"-p", "Preserve file attributes"},
		},
	},
	{
		Name:        "mv",
		Description: "Moves or renames files and directories",
		Usage:       "mv [OPTION] SOURCE DESTINATION",
		Why:         "Essential for file organization and renaming. Unlike copy, it moves files to new locations or gives them new names without duplicating data.",
		Examples: []Example{
			{"mv oldname.txt newname.txt", "Rename file"},
			{"mv file.txt /home/user/", "Move file to directory"},
			{"mv *.txt documents/", "Move all txt files"},
		},
		Options: []Option{
			{"-i", "Prompt before overwriting"},
			{"-v", "Verbose output"},
			{"-n", "Never overwrite existing files"},
		},
	},
	{
		Name:        "rm",
		Description: "Removes (deletes) files and directories",
		Usage:       "rm [OPTION] FILE",
		Why:         "Necessary for cleaning up disk space and removing unwanted files. Be careful - deleted files are usually not recoverable. Essential for system maintenance.",
		Examples: []Example{
			{"rm file.txt", "Delete single file"},
			{"rm -r folder/", "Delete directory and contents"},
			{"rm -i *.txt", "Delete with confirmation prompt"},
		},
		Options: []Option{
			{"-r", "Remove directories recursively"},
			{"-i", "Prompt before each removal"},
			{"-f", "Force removal without prompts"},
			{"-v", "Verbose output"},
		},
	},
	{
		Name:        "chmod",
		Description: "Changes file permissions and access rights",
		Usage:       "chmod [OPTION] MODE FILE",
		Why:         "Critical for security - controls who can read, write, or execute files. Essential for multi-user systems, server administration, and protecting sensitive data.",
		Examples: []Example{
			{"chmod 755 script.sh", "Make file executable for owner, readable for others"},
			{"chmod +x program", "Add execute permission"},
			{"chmod u+w file.txt", "Give write permission to user"},
		},
		Options: []Option{
			{"+x", "Add execute permission"},
			{"-w", "Remove write permission"},
			{"u", "User (owner) permissions"},
			{"g", "Group permissions"},
			{"o", "Other users permissions"},
		},
	},
	{
		Name:        "cat",
		Description: "Displays file contents or concatenates files",
		Usage:       "cat [OPTION] FILE",
		Why:         "Quick way to view file contents without opening an editor. Essential for reading configuration files, logs, and small text files. Very commonly used.",
		Examples: []Example{
			{"cat file.txt", "Display entire file content"},
			{"cat file1.txt file2.txt", "Display multiple files"},
			{"cat -n file.txt", "Show with line numbers"},
		},
		Options: []Option{
			{"-n", "Number all output lines"},
			{"-b", "Number non-empty lines"},
			{"-s", "Suppress multiple blank lines"},
		},
	},
	{
		Name:        "grep",
		Description: "Searches for patterns in text files",
		Usage:       "grep [OPTION] PATTERN FILE",
		Why:         "Powerful for finding specific text in files. Essential for log analysis, code searching, and data extraction. One of the most important text processing tools.",
		Examples: []Example{
			{"grep 'error' logfile.txt", "Find lines containing 'error'"},
			{"grep -i 'linux' file.txt", "Case-insensitive search"},
			{"grep -r 'function' .", "Search in all files recursively"},
		},
		Options: []Option{
			{"-i", "Case-insensitive search"},
			{"-r", "Search recursively in directories"},
			{"-n", "Show line numbers"},
			{"-v", "Invert match (show non-matching lines)"},
		},
	},
	{
		Name:        "ps",
		Description: "Displays information about running processes",
		Usage:       "ps [OPTION]",
		Why:         "Essential for system monitoring and troubleshooting. Shows what programs are running, their resource usage, and process IDs for management.",
		Examples: []Example{
			{"ps aux", "Show all processes with detailed info"},
			{"ps -ef", "Show all processes in full format"},
			{"ps -u username", "Show processes for specific user"},
		},
		Options: []Option{
			{"aux", "All processes with user and resource info"},
			{"-ef", "Full format listing"},
			{"-u", "Processes for specific user"},
		},
	},
	{
		Name:        "top",
		Description: "Displays real-time system processes and resource usage",
		Usage:       "top [OPTION]",
		Why:         "Critical for system monitoring - shows live CPU, memory usage, and running processes. Essential for performance troubleshooting and system administration.",
		Examples: []Example{
			{"top", "Show real-time process information"},
			{"top -u username", "Show processes for specific user"},
			{"top -p 1234", "Monitor specific process ID"},
		},
		Options: []Option{
			{"-u", "Show processes for specific user"},
			{"-p", "Monitor specific process ID"},
			{"-d", "Set refresh interval in seconds"},
		},
	},
	{
		Name:        "find",
		Description: "Searches for files and directories in the filesystem",
		Usage:       "find [PATH] [EXPRESSION]",
		Why:         "Powerful file location tool. Essential when you need to locate files by name, type, size, or other attributes across your entire system or specific directories.",
		Examples: []Example{
			{"find . -name '*.txt'", "Find all .txt files in current directory"},
			{"find /home -type d -name 'project*'", "Find directories starting with 'project'"},
			{"find . -size +1M", "Find files larger than 1MB"},
		},
		Options: []Option{
			{"-name", "Search by filename pattern"},
			{"-type", "Search by file type (f=file, d=directory)"},
			{"-size", "Search by file size"},
			{"-exec", "Execute command on found files"},
		},
	},
	{
		Name:        "which",
		Description: "Locates executable files in the system PATH",
		Usage:       "which PROGRAM",
		Why:         "Helps you find where programs are installed. Essential for troubleshooting command not found errors and understanding your system's executable locations.",
		Examples: []Example{
			{"which python", "Find location of python executable"},
			{"which -a python", "Show all locations of python"},
			{"which bash", "Find bash shell location"},
		},
		Options: []Option{
			{"-a", "Show all matching executables in PATH"},
		},
	},
	{
		Name:        "chown",
		Description: "Changes file owner and group",
		Usage:       "chown [OPTION] OWNER[:GROUP] FILE",
		Why:         "Ownership decides which user and group the permission bits apply to. Needed whenever files move between users or services.",
		Examples: []Example{
			{"chown user file.txt", "Make user the owner of file.txt"},
			{"chown user:group file.txt", "Change owner and group together"},
			{"chown -R www-data /var/www", "Change ownership of a whole tree"},
		},
		Options: []Option{
			{"-R", "Operate on directories recursively"},
			{"-v", "Report every file processed"},
		},
	},
	{
		Name:        "head",
		Description: "Prints the first lines of a file",
		Usage:       "head [OPTION] FILE",
		Why:         "The quickest way to peek at the top of a long file such as a CSV header or the start of a log.",
		Examples: []Example{
			{"head file.txt", "Show the first 10 lines"},
			{"head -n 5 file.txt", "Show the first 5 lines"},
		},
		Options: []Option{
			{"-n", "Number of lines to print"},
			{"-c", "Number of bytes to print"},
		},
	},
	{
		Name:        "tail",
		Description: "Prints the last lines of a file",
		Usage:       "tail [OPTION] FILE",
		Why:         "Logs grow at the bottom. tail shows the latest entries and can follow a file as it is written.",
		Examples: []Example{
			{"tail file.txt", "Show the last 10 lines"},
			{"tail -f /var/log/syslog", "Follow new lines as they are appended"},
		},
		Options: []Option{
			{"-n", "Number of lines to print"},
			{"-f", "Follow the file as it grows"},
		},
	},
	{
		Name:        "wc",
		Description: "Counts lines, words and bytes",
		Usage:       "wc [OPTION] FILE",
		Why:         "Handy for sizing files and for counting results at the end of a pipeline.",
		Examples: []Example{
			{"wc file.txt", "Print line, word and byte counts"},
			{"wc -l file.txt", "Count lines only"},
		},
		Options: []Option{
			{"-l", "Count lines"},
			{"-w", "Count words"},
			{"-c", "Count bytes"},
		},
	},
	{
		Name:        "kill",
		Description: "Sends a signal to a process",
		Usage:       "kill [SIGNAL] PID",
		Why:         "Stops runaway or hung programs by process ID. Pairs with ps to find the PID first.",
		Examples: []Example{
			{"kill 1234", "Ask process 1234 to terminate"},
			{"kill -9 1234", "Force-kill process 1234"},
		},
		Options: []Option{
			{"-9", "SIGKILL, cannot be ignored"},
			{"-15", "SIGTERM, the polite default"},
			{"-l", "List signal names"},
		},
	},
	{
		Name:        "uname",
		Description: "Prints system information",
		Usage:       "uname [OPTION]",
		Why:         "Tells you the kernel, architecture and hostname, which matters when installing software or reporting bugs.",
		Examples: []Example{
			{"uname", "Print the kernel name"},
			{"uname -a", "Print everything"},
		},
		Options: []Option{
			{"-a", "All information"},
			{"-r", "Kernel release"},
			{"-m", "Machine hardware name"},
		},
	},
	{
		Name:        "df",
		Description: "Reports file system disk space usage",
		Usage:       "df [OPTION] [FILE]",
		Why:         "Full disks break services. df shows how much space each mounted file system has left.",
		Examples: []Example{
			{"df", "Show usage in 1K blocks"},
			{"df -h", "Show usage in human-readable units"},
		},
		Options: []Option{
			{"-h", "Human-readable sizes"},
			{"-T", "Show file system type"},
		},
	},
	{
		Name:        "du",
		Description: "Estimates file and directory space usage",
		Usage:       "du [OPTION] [FILE]",
		Why:         "Finds what is eating the disk once df has told you it is full.",
		Examples: []Example{
			{"du -h", "Sizes of every subdirectory"},
			{"du -sh folder", "Total size of one folder"},
		},
		Options: []Option{
			{"-h", "Human-readable sizes"},
			{"-s", "Summary only"},
		},
	},
	{
		Name:        "free",
		Description: "Displays memory usage",
		Usage:       "free [OPTION]",
		Why:         "Shows how much RAM and swap is in use, the first check when a machine feels slow.",
		Examples: []Example{
			{"free", "Memory in kibibytes"},
			{"free -h", "Memory in human-readable units"},
		},
		Options: []Option{
			{"-h", "Human-readable sizes"},
			{"-s", "Repeat every N seconds"},
		},
	},
	{
		Name:        "uptime",
		Description: "Shows how long the system has been running",
		Usage:       "uptime [OPTION]",
		Why:         "Gives uptime, logged-in users and load averages in one line.",
		Examples: []Example{
			{"uptime", "Print uptime and load"},
			{"uptime -p", "Pretty-print the uptime only"},
		},
		Options: []Option{
			{"-p", "Pretty format"},
			{"-s", "Show the boot time"},
		},
	},
	{
		Name:        "ping",
		Description: "Tests reachability of a network host",
		Usage:       "ping [OPTION] HOST",
		Why:         "The first network troubleshooting step: is the other side reachable and how long does a round trip take?",
		Examples: []Example{
			{"ping google.com", "Ping until interrupted"},
			{"ping -c 4 google.com", "Send exactly four packets"},
		},
		Options: []Option{
			{"-c", "Number of packets to send"},
			{"-i", "Seconds between packets"},
		},
	},
	{
		Name:        "wget",
		Description: "Downloads files from the web",
		Usage:       "wget [OPTION] URL",
		Why:         "Non-interactive downloads that work in scripts and over flaky links.",
		Examples: []Example{
			{"wget https://example.com/file.txt", "Download a file"},
			{"wget -c https://example.com/big.iso", "Resume a partial download"},
		},
		Options: []Option{
			{"-O", "Write to the given file"},
			{"-c", "Continue a partial download"},
			{"-q", "Quiet mode"},
		},
	},
	{
		Name:        "curl",
		Description: "Transfers data to or from a server",
		Usage:       "curl [OPTION] URL",
		Why:         "Talks HTTP and many other protocols. The standard tool for testing APIs from the shell.",
		Examples: []Example{
			{"curl https://example.com", "Print the response body"},
			{"curl -I https://example.com", "Print only the response headers"},
		},
		Options: []Option{
			{"-I", "Fetch headers only"},
			{"-o", "Write output to a file"},
			{"-L", "Follow redirects"},
		},
	},
	{
		Name:        "tar",
		Description: "Creates and extracts archives",
		Usage:       "tar [OPTION] ARCHIVE [FILE]",
		Why:         "Bundles directories into one file for backup and transfer, usually compressed with gzip.",
		Examples: []Example{
			{"tar -czf archive.tar.gz folder/", "Create a gzip-compressed archive"},
			{"tar -xzf archive.tar.gz", "Extract a gzip-compressed archive"},
			{"tar -tzf archive.tar.gz", "List archive contents"},
		},
		Options: []Option{
			{"-c", "Create an archive"},
			{"-x", "Extract an archive"},
			{"-z", "Filter through gzip"},
			{"-f", "Archive file name"},
		},
	},
	{
		Name:        "echo",
		Description: "Prints text to standard output",
		Usage:       "echo [OPTION] [STRING]",
		Why:         "The building block of shell scripts: print messages and inspect variables.",
		Examples: []Example{
			{"echo 'Hello'", "Print a string"},
			{"echo $HOME", "Print a variable"},
		},
		Options: []Option{
			{"-n", "Do not print the trailing newline"},
			{"-e", "Interpret backslash escapes"},
		},
	},
	{
		Name:        "env",
		Description: "Prints or modifies the environment",
		Usage:       "env [NAME=VALUE] [COMMAND]",
		Why:         "Shows every environment variable and can run a command with a modified environment.",
		Examples: []Example{
			{"env", "List environment variables"},
			{"env LANG=C ls", "Run ls with LANG overridden"},
		},
		Options: []Option{
			{"-i", "Start with an empty environment"},
			{"-u", "Remove a variable"},
		},
	},
	{
		Name:        "apt",
		Description: "Manages Debian and Ubuntu packages",
		Usage:       "apt [COMMAND] [PACKAGE]",
		Why:         "Installs, upgrades and removes software with dependency resolution.",
		Examples: []Example{
			{"apt update", "Refresh package lists"},
			{"apt install vim", "Install a package"},
		},
		Options: []Option{
			{"update", "Refresh package lists"},
			{"install", "Install packages"},
			{"remove", "Remove packages"},
		},
	},
	{
		Name:        "netstat",
		Description: "Prints network connections and listening ports",
		Usage:       "netstat [OPTION]",
		Why:         "Answers which process is listening on which port.",
		Examples: []Example{
			{"netstat -tuln", "Listening TCP and UDP ports"},
			{"netstat -an", "All sockets, numeric"},
		},
		Options: []Option{
			{"-t", "TCP"},
			{"-u", "UDP"},
			{"-l", "Listening sockets only"},
			{"-n", "Numeric addresses"},
		},
	},
}
